package webutil

import (
	"errors"
	"log"
	"reflect"
	"strings"

	"go_5_card_catalog/internal/model"

	"github.com/go-playground/locales/ja" // 日本語ロケール
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja" // 日本語翻訳
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"name":        "名前",
	"code":        "カードコード",
	"description": "説明",
	"image_url":   "画像URL",
	"type_id":     "カードタイプID",
	"sub_type_id": "カードサブタイプID",
	"attack":      "攻撃力",
	"defense":     "守備力",
	"stars":       "星の数",
	"limit":       "取得件数",
	"offset":      "オフセット",
}

func init() {
	// バリデータのインスタンスを生成
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// 日本語のロケールとトランスレータを設定
	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}

	// バリデータに日本語の翻訳を登録
	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// translateField は jsonタグ名を日本語フィールド名に変換するヘルパー
	translateField := func(fieldName string) string {
		if translated, ok := fieldNameTranslations[fieldName]; ok {
			return translated
		}
		return fieldName
	}

	// registerTranslation は、パラメータなしタグのメッセージテンプレートを登録するヘルパー関数
	registerTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, translateField(fe.Field()))
			return t
		})
	}

	// registerParamTranslation はタグパラメータ ({1}) を使うタグ用のヘルパー関数
	registerParamTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, translateField(fe.Field()), fe.Param())
			return t
		})
	}

	registerTranslation("required", "{0}は必須項目です。")
	registerTranslation("uuid4", "{0}はUUID形式で指定してください。")
	registerParamTranslation("min", "{0}は{1}文字以上で入力してください。")
	registerParamTranslation("max", "{0}は{1}文字以下で入力してください。")
	registerParamTranslation("len", "{0}は{1}文字で入力してください。")
}

// NewValidationError は validator のエラーを AppError に変換します。
// 最初のエラーを代表として日本語メッセージに翻訳してクライアントに返します。
func NewValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		firstErr := validationErrors[0]
		return model.NewAppError(
			"VALIDATION_ERROR",
			firstErr.Translate(Trans),
			firstErr.Field(), // エラーが発生したフィールド (jsonタグ名)
			model.ErrInvalidInput,
		)
	}
	// バリデーションライブラリ自体のエラーなど、予期せぬエラー
	return err
}
