package doudizhu

import (
	"slices"
	"strconv"
	"strings"
)

// Suit 牌的花色
type Suit uint8

const (
	SuitNone    Suit = iota
	SuitSpade        // 黑桃
	SuitHeart        // 红桃
	SuitClub         // 梅花
	SuitDiamond      // 方块
	SuitJoker        // 王
)

// String 返回花色的显示符号
func (s Suit) String() string {
	switch s {
	case SuitSpade:
		return "♠"
	case SuitHeart:
		return "♥"
	case SuitClub:
		return "♣"
	case SuitDiamond:
		return "♦"
	default:
		return ""
	}
}

// Rank 牌的点数
// 数值即为牌力：3 最小，2 压过 A，大小王在 2 之上
type Rank int

const (
	RankNone       Rank = 0
	Rank3          Rank = 3
	Rank4          Rank = 4
	Rank5          Rank = 5
	Rank6          Rank = 6
	Rank7          Rank = 7
	Rank8          Rank = 8
	Rank9          Rank = 9
	Rank10         Rank = 10
	RankJ          Rank = 11
	RankQ          Rank = 12
	RankK          Rank = 13
	RankA          Rank = 14
	Rank2          Rank = 15
	RankBlackJoker Rank = 16 // 小王
	RankRedJoker   Rank = 17 // 大王
)

// String 返回点数的显示文本
func (r Rank) String() string {
	switch r {
	case RankJ:
		return "J"
	case RankQ:
		return "Q"
	case RankK:
		return "K"
	case RankA:
		return "A"
	case Rank2:
		return "2"
	case RankBlackJoker:
		return "小王"
	case RankRedJoker:
		return "大王"
	default:
		return strconv.Itoa(int(r))
	}
}

// Card 代表一张扑克牌
// Selected 为界面侧的选中标记，不参与牌力比较
type Card struct {
	Rank     Rank
	Suit     Suit
	Selected bool
}

// NewCard 创建一张普通牌
func NewCard(rank Rank, suit Suit) Card {
	return Card{
		Rank: rank,
		Suit: suit,
	}
}

// NewJoker 创建一张王牌
func NewJoker(rank Rank) Card {
	return Card{
		Rank: rank,
		Suit: SuitJoker,
	}
}

// Value 返回牌力值
func (c Card) Value() int {
	return int(c.Rank)
}

// IsJoker 判断是否为王牌
func (c Card) IsJoker() bool {
	return c.Rank == RankBlackJoker || c.Rank == RankRedJoker
}

// Equal 判断两张牌是否为同一张（点数与花色都相同，选中状态不参与）
func (c Card) Equal(other Card) bool {
	return c.Rank == other.Rank && c.Suit == other.Suit
}

// ToggleSelected 切换选中状态
func (c *Card) ToggleSelected() {
	c.Selected = !c.Selected
}

// String 返回牌面显示文本，如 ♠A、小王
func (c Card) String() string {
	if c.IsJoker() {
		return c.Rank.String()
	}
	return c.Suit.String() + c.Rank.String()
}

type Cards []Card

// Clone 返回手牌的副本
func (cs Cards) Clone() Cards {
	if cs == nil {
		return nil
	}
	clone := make(Cards, len(cs))
	copy(clone, cs)
	return clone
}

// Sort 按牌力从大到小排序手牌
func (cs Cards) Sort() {
	slices.SortStableFunc(cs, func(a, b Card) int {
		return b.Value() - a.Value()
	})
}

// Contains 判断是否包含指定的牌
func (cs Cards) Contains(card Card) bool {
	for _, c := range cs {
		if c.Equal(card) {
			return true
		}
	}
	return false
}

// Remove 移除指定的牌，每张只移除一次
// 返回移除后的手牌和是否全部移除成功；失败时原手牌不变
func (cs Cards) Remove(cards Cards) (Cards, bool) {
	remain := cs.Clone()
	for _, card := range cards {
		found := false
		for i, c := range remain {
			if c.Equal(card) {
				remain = append(remain[:i], remain[i+1:]...)
				found = true
				break
			}
		}
		if !found {
			return cs, false
		}
	}
	return remain, true
}

// Selected 返回所有选中的牌
func (cs Cards) Selected() Cards {
	var selected Cards
	for _, c := range cs {
		if c.Selected {
			selected = append(selected, c)
		}
	}
	return selected
}

// ClearSelection 清除所有选中状态
func (cs Cards) ClearSelection() {
	for i := range cs {
		cs[i].Selected = false
	}
}

// String 返回手牌的显示文本
func (cs Cards) String() string {
	var sb strings.Builder
	for i, c := range cs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}
