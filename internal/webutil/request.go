package webutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go_5_card_catalog/internal/model"

	"github.com/google/uuid"
)

// DecodeJSONBody はリクエストボディをデコードします
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.ErrInvalidInput
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return model.ErrInvalidInput
	}
	return nil
}

// ParsePagination はクエリ文字列から limit / offset を取り出します。
// 未指定はゼロ値のまま返し、デフォルト適用はサービス層の Normalize に任せます。
func ParsePagination(r *http.Request) (model.Pagination, error) {
	var p model.Pagination
	q := r.URL.Query()

	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit <= 0 {
			return p, model.NewAppError("INVALID_QUERY_PARAM", "limitは正の整数で指定してください。", "limit", model.ErrInvalidInput)
		}
		p.Limit = limit
	}
	if v := q.Get("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil || offset < 0 {
			return p, model.NewAppError("INVALID_QUERY_PARAM", "offsetは0以上の整数で指定してください。", "offset", model.ErrInvalidInput)
		}
		p.Offset = offset
	}
	return p, nil
}

// ParseCardFilter はクエリ文字列からカード検索フィルタを組み立てます。
// 指定のないフィールドは nil のままにし、述語に含めません。
// stars は数値文字列として受け、ここで int に変換します。
func ParseCardFilter(r *http.Request) (*model.CardFilter, error) {
	p, err := ParsePagination(r)
	if err != nil {
		return nil, err
	}
	filter := &model.CardFilter{Pagination: p}
	q := r.URL.Query()

	if v := q.Get("id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, model.NewAppError("INVALID_QUERY_PARAM", "idの形式が正しくありません。", "id", model.ErrInvalidInput)
		}
		filter.ID = &id
	}
	if v := q.Get("name"); v != "" {
		name := v
		filter.Name = &name
	}
	if v := q.Get("type_id"); v != "" {
		typeID, err := uuid.Parse(v)
		if err != nil {
			return nil, model.NewAppError("INVALID_QUERY_PARAM", "type_idの形式が正しくありません。", "type_id", model.ErrInvalidInput)
		}
		filter.TypeID = &typeID
	}
	if v := q.Get("sub_type_id"); v != "" {
		subTypeID, err := uuid.Parse(v)
		if err != nil {
			return nil, model.NewAppError("INVALID_QUERY_PARAM", "sub_type_idの形式が正しくありません。", "sub_type_id", model.ErrInvalidInput)
		}
		filter.SubTypeID = &subTypeID
	}
	if v := q.Get("stars"); v != "" {
		stars, err := strconv.Atoi(v)
		if err != nil {
			return nil, model.NewAppError("INVALID_QUERY_PARAM", "starsは数値で指定してください。", "stars", model.ErrInvalidInput)
		}
		filter.Stars = &stars
	}
	return filter, nil
}
