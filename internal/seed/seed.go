// internal/seed/seed.go
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"go_5_card_catalog/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type rawCard struct {
	Name        string
	Code        string
	Description string
	TypeName    string
	SubTypeName string
	Attack      int
	Defense     int
	Stars       *int
}

func starsOf(n int) *int { return &n }

var typeNames = []string{"Monster", "Spell", "Trap"}

var subTypesByType = map[string][]string{
	"Monster": {"Normal Monster", "Effect Monster", "Ritual Monster", "Fusion Monster"},
	"Spell":   {"Normal Spell", "Quick-Play Spell", "Continuous Spell", "Field Spell", "Equip Spell", "Ritual Spell"},
	"Trap":    {"Normal Trap", "Continuous Trap", "Counter Trap"},
}

var rawCards = []rawCard{
	{Name: "Azure Dragon Whelp", Code: "YG-001", Description: "A young dragon with swift strikes.", TypeName: "Monster", SubTypeName: "Normal Monster", Attack: 1400, Defense: 1200, Stars: starsOf(4)},
	{Name: "Azure Dragon Elder", Code: "YG-002", Description: "Elder of the Azure line, breathes lightning.", TypeName: "Monster", SubTypeName: "Effect Monster", Attack: 2300, Defense: 1600, Stars: starsOf(6)},
	{Name: "Obsidian Ritualist", Code: "YG-003", Description: "Requires a ritual to summon; draws power from darkness.", TypeName: "Monster", SubTypeName: "Ritual Monster", Attack: 2500, Defense: 2000, Stars: starsOf(8)},
	{Name: "Mirror Chimera", Code: "YG-004", Description: "Fusion of three mirror beasts.", TypeName: "Monster", SubTypeName: "Fusion Monster", Attack: 2800, Defense: 2400, Stars: starsOf(8)},
	{Name: "Celestial Tuner", Code: "YG-005", Description: "Tuner used for synchro calls.", TypeName: "Monster", SubTypeName: "Normal Monster", Attack: 2100, Defense: 1500, Stars: starsOf(6)},
	{Name: "Void Carrier", Code: "YG-006", Description: "An XYZ monster summoned by overlaying.", TypeName: "Monster", SubTypeName: "Normal Monster", Attack: 2600, Defense: 2200},
	{Name: "Nether Linker", Code: "YG-007", Description: "Link monster that connects extra deck zones.", TypeName: "Monster", SubTypeName: "Normal Monster", Attack: 1800, Defense: 0},
	{Name: "Pendulum Sorcerer", Code: "YG-008", Description: "Can be placed in pendulum zone to scale.", TypeName: "Monster", SubTypeName: "Normal Monster", Attack: 1600, Defense: 1400, Stars: starsOf(4)},
	{Name: "Iron Sentinel", Code: "YG-009", Description: "Armored guardian with high defense.", TypeName: "Monster", SubTypeName: "Normal Monster", Attack: 1000, Defense: 2600, Stars: starsOf(4)},
	{Name: "Blight Harbinger", Code: "YG-010", Description: "Effect monster that drains opponent life.", TypeName: "Monster", SubTypeName: "Effect Monster", Attack: 1900, Defense: 1300, Stars: starsOf(4)},
	{Name: "Ritual of Dawn", Code: "YG-011", Description: "Ritual monster of the morning cult.", TypeName: "Monster", SubTypeName: "Ritual Monster", Attack: 2400, Defense: 1800, Stars: starsOf(7)},
	{Name: "Chromatic Dragon", Code: "YG-012", Description: "Fusion of multi-element drakes.", TypeName: "Monster", SubTypeName: "Fusion Monster", Attack: 3000, Defense: 2500, Stars: starsOf(9)},
	{Name: "Harmony Tuner", Code: "YG-013", Description: "Tuner that balances scales.", TypeName: "Monster", SubTypeName: "Normal Monster", Attack: 2200, Defense: 1600, Stars: starsOf(7)},
	{Name: "Abyss Overlay", Code: "YG-014", Description: "XYZ born of abyssal energy.", TypeName: "Monster", SubTypeName: "Normal Monster", Attack: 2700, Defense: 2100},
	{Name: "Link Vanguard", Code: "YG-015", Description: "Link arrow points to frontline allies.", TypeName: "Monster", SubTypeName: "Normal Monster", Attack: 2000, Defense: 0},
	{Name: "Pendulum Archer", Code: "YG-016", Description: "Pendulum range strikes from distance.", TypeName: "Monster", SubTypeName: "Normal Monster", Attack: 1500, Defense: 1000, Stars: starsOf(3)},
	{Name: "Golem of Ages", Code: "YG-017", Description: "Ancient golem with immense durability.", TypeName: "Monster", SubTypeName: "Normal Monster", Attack: 1600, Defense: 3000, Stars: starsOf(8)},
	{Name: "Spectral Assassin", Code: "YG-018", Description: "Effect monster that bypasses defenses.", TypeName: "Monster", SubTypeName: "Effect Monster", Attack: 2100, Defense: 1200, Stars: starsOf(5)},
	{Name: "Ritual Binder", Code: "YG-019", Description: "Ritual monster that manipulates graveyard.", TypeName: "Monster", SubTypeName: "Ritual Monster", Attack: 2000, Defense: 2200, Stars: starsOf(6)},
	{Name: "Chromatic Sphinx", Code: "YG-020", Description: "Fusion guardian of hidden knowledge.", TypeName: "Monster", SubTypeName: "Fusion Monster", Attack: 2600, Defense: 2400, Stars: starsOf(8)},

	{Name: "Revival Spring", Code: "YG-021", Description: "Special Summon 1 monster from your GY.", TypeName: "Spell", SubTypeName: "Normal Spell"},
	{Name: "Rapid Shift", Code: "YG-022", Description: "Quickly change a monster position and grant speed.", TypeName: "Spell", SubTypeName: "Quick-Play Spell"},
	{Name: "Endless Field", Code: "YG-023", Description: "Continuous magic that benefits plant archetypes.", TypeName: "Spell", SubTypeName: "Continuous Spell"},
	{Name: "Temple Grounds", Code: "YG-024", Description: "Field spell that empowers ritual summons.", TypeName: "Spell", SubTypeName: "Field Spell"},
	{Name: "Blade of Bond", Code: "YG-025", Description: "Equip: increases ATK when equipped to a dragon.", TypeName: "Spell", SubTypeName: "Equip Spell"},
	{Name: "Ancient Rite", Code: "YG-026", Description: "Ritual spell to call ancient guardians.", TypeName: "Spell", SubTypeName: "Ritual Spell"},
	{Name: "Echo of Speed", Code: "YG-027", Description: "Quick-Play that grants extra attacks.", TypeName: "Spell", SubTypeName: "Quick-Play Spell"},
	{Name: "Sustaining Wind", Code: "YG-028", Description: "Continuous spell that heals each turn.", TypeName: "Spell", SubTypeName: "Continuous Spell"},
	{Name: "Mirror Field", Code: "YG-029", Description: "Field spell that reflects damage.", TypeName: "Spell", SubTypeName: "Field Spell"},
	{Name: "Ritebound Chain", Code: "YG-030", Description: "Ritual Spell: reduces materials needed.", TypeName: "Spell", SubTypeName: "Ritual Spell"},

	{Name: "Counterweb", Code: "YG-031", Description: "Counter trap that negates a spell activation.", TypeName: "Trap", SubTypeName: "Counter Trap"},
	{Name: "Shattered Guard", Code: "YG-032", Description: "Normal trap that destroys attacking monster.", TypeName: "Trap", SubTypeName: "Normal Trap"},
	{Name: "Eternal Cage", Code: "YG-033", Description: "Continuous trap that restricts summons.", TypeName: "Trap", SubTypeName: "Continuous Trap"},
	{Name: "Nullifying Rip", Code: "YG-034", Description: "Counter trap that cancels effects targeting you.", TypeName: "Trap", SubTypeName: "Counter Trap"},
	{Name: "Spike Bind", Code: "YG-035", Description: "Normal trap that traps opponent monsters.", TypeName: "Trap", SubTypeName: "Normal Trap"},
	{Name: "Reflective Shell", Code: "YG-036", Description: "Continuous trap that boosts defense when attacked.", TypeName: "Trap", SubTypeName: "Continuous Trap"},
	{Name: "Timing Break", Code: "YG-037", Description: "Counter trap that reverses activation timing.", TypeName: "Trap", SubTypeName: "Counter Trap"},
	{Name: "Ember Snare", Code: "YG-038", Description: "Normal trap that deals burn damage.", TypeName: "Trap", SubTypeName: "Normal Trap"},
	{Name: "Anchor Net", Code: "YG-039", Description: "Continuous trap: prevents fleeing monsters.", TypeName: "Trap", SubTypeName: "Continuous Trap"},
	{Name: "Last Stand", Code: "YG-040", Description: "Counter trap that sacrifices resources to save a monster.", TypeName: "Trap", SubTypeName: "Counter Trap"},
}

// Run はテーブルを初期化し、タイプ・サブタイプ・カードの初期データを投入します。
// 全件削除と投入を同一トランザクションで行います。
func Run(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 子テーブルから順に全件削除 (論理削除済みの行も含めて物理削除)
		logger.Info("Clearing existing catalog data...")
		for _, m := range []interface{}{&model.CardStatistics{}, &model.Card{}, &model.CardSubType{}, &model.CardType{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(m).Error; err != nil {
				return fmt.Errorf("failed to clear table: %w", err)
			}
		}

		// 2. カードタイプ
		savedTypes := make(map[string]*model.CardType, len(typeNames))
		for _, name := range typeNames {
			cardType := &model.CardType{TypeID: uuid.New(), Name: name}
			if err := tx.Create(cardType).Error; err != nil {
				return fmt.Errorf("failed to create card type %q: %w", name, err)
			}
			savedTypes[name] = cardType
		}

		// 3. カードサブタイプ (親タイプに紐付け)
		savedSubTypes := make(map[string]*model.CardSubType)
		for typeName, subNames := range subTypesByType {
			parent := savedTypes[typeName]
			for _, subName := range subNames {
				subType := &model.CardSubType{SubTypeID: uuid.New(), TypeID: parent.TypeID, Name: subName}
				if err := tx.Create(subType).Error; err != nil {
					return fmt.Errorf("failed to create card sub type %q: %w", subName, err)
				}
				savedSubTypes[typeName+"::"+subName] = subType
			}
		}

		// 4. カード (モンスターのみステータス行を持つ)
		count := 0
		for _, rc := range rawCards {
			cardType, okType := savedTypes[rc.TypeName]
			subType, okSub := savedSubTypes[rc.TypeName+"::"+rc.SubTypeName]
			if !okType || !okSub {
				logger.Warn("Skipping card because type/sub type is missing",
					slog.String("name", rc.Name), slog.String("type", rc.TypeName), slog.String("sub_type", rc.SubTypeName))
				continue
			}

			imageURL := fmt.Sprintf("https://example.com/images/%s.jpg", rc.Code)
			card := &model.Card{
				CardID:      uuid.New(),
				Name:        rc.Name,
				Code:        rc.Code,
				Description: rc.Description,
				ImageURL:    &imageURL,
				TypeID:      cardType.TypeID,
				SubTypeID:   subType.SubTypeID,
			}
			if err := tx.Create(card).Error; err != nil {
				return fmt.Errorf("failed to create card %q: %w", rc.Name, err)
			}
			count++

			if rc.TypeName == "Monster" {
				stats := &model.CardStatistics{
					StatisticsID: uuid.New(),
					CardID:       card.CardID,
					Attack:       rc.Attack,
					Defense:      rc.Defense,
					Stars:        rc.Stars,
				}
				if err := tx.Create(stats).Error; err != nil {
					return fmt.Errorf("failed to create statistics for card %q: %w", rc.Name, err)
				}
			}
		}

		logger.Info("Seed data inserted", slog.Int("cards", count))
		return nil
	})
}
