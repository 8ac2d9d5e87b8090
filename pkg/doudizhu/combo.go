package doudizhu

import "slices"

// ComboType 牌型
type ComboType uint8

const (
	ComboPass           ComboType = iota // 不出
	ComboSingle                          // 单张
	ComboPair                            // 对子
	ComboTrio                            // 三张
	ComboTrioSingle                      // 三带一
	ComboTrioPair                        // 三带二
	ComboStraight                        // 顺子（至少 5 张连续单牌）
	ComboStraightPair                    // 连对（至少 3 组连续对子）
	ComboAirplane                        // 飞机（至少 2 组连续三张）
	ComboAirplaneSingle                  // 飞机带单牌
	ComboAirplanePair                    // 飞机带对子
	ComboFourTwoSingle                   // 四带二单
	ComboFourTwoPair                     // 四带二对
	ComboBomb                            // 炸弹（四张相同点数）
	ComboRocket                          // 火箭（双王）
	ComboInvalid                         // 无效牌型
)

// String 返回牌型名称
func (t ComboType) String() string {
	switch t {
	case ComboPass:
		return "PASS"
	case ComboSingle:
		return "SINGLE"
	case ComboPair:
		return "PAIR"
	case ComboTrio:
		return "TRIO"
	case ComboTrioSingle:
		return "TRIO_WITH_SINGLE"
	case ComboTrioPair:
		return "TRIO_WITH_PAIR"
	case ComboStraight:
		return "STRAIGHT"
	case ComboStraightPair:
		return "STRAIGHT_PAIR"
	case ComboAirplane:
		return "AIRPLANE"
	case ComboAirplaneSingle:
		return "AIRPLANE_WITH_SINGLE"
	case ComboAirplanePair:
		return "AIRPLANE_WITH_PAIR"
	case ComboFourTwoSingle:
		return "FOUR_WITH_TWO_SINGLE"
	case ComboFourTwoPair:
		return "FOUR_WITH_TWO_PAIR"
	case ComboBomb:
		return "BOMB"
	case ComboRocket:
		return "ROCKET"
	default:
		return "INVALID"
	}
}

// rocketMainValue 火箭的主牌值哨兵，大于任何真实点数
// 只作为结构标记用，整局只可能出现一个火箭，不会发生火箭间的数值比较
const rocketMainValue = 100

// straightMaxValue 顺子、连对、飞机的连续区间上界（不含）
// 2 和王太大，不参与连牌
const straightMaxValue = int(Rank2)

// Combo 一手牌的牌型判定结果
// 由一组牌纯函数地推导，Cards 为输入的副本
type Combo struct {
	Cards     Cards
	Type      ComboType
	MainValue int // 主牌值，用于同牌型或炸弹间比较
}

// NewCombo 分析一组牌的牌型
// 空输入判定为 PASS
func NewCombo(cards Cards) *Combo {
	c := &Combo{Cards: cards.Clone()}
	c.analyze()
	return c
}

// IsValid 判断是否为有效牌型
func (c *Combo) IsValid() bool {
	return c.Type != ComboInvalid
}

// IsEmpty 判断是否为不出牌
func (c *Combo) IsEmpty() bool {
	return len(c.Cards) == 0
}

// analyze 按固定优先级判定牌型
// 多个牌型张数相同时，先判定更简单、更稀有的牌型
// （如 4 张同点数是炸弹，不是长度为 4 的三带一）
func (c *Combo) analyze() {
	if len(c.Cards) == 0 {
		c.Type = ComboPass
		return
	}

	groups := c.groupByValue()

	switch {
	case c.isRocket():
		c.Type = ComboRocket
		c.MainValue = rocketMainValue
	case c.isBomb(groups):
		c.Type = ComboBomb
		c.MainValue = c.Cards[0].Value()
	case len(c.Cards) == 1:
		c.Type = ComboSingle
		c.MainValue = c.Cards[0].Value()
	case c.isPair(groups):
		c.Type = ComboPair
		c.MainValue = c.Cards[0].Value()
	case c.isTrio(groups):
		c.Type = ComboTrio
		c.MainValue = groupValueOfSize(groups, 3)
	case c.isTrioSingle(groups):
		c.Type = ComboTrioSingle
		c.MainValue = groupValueOfSize(groups, 3)
	case c.isTrioPair(groups):
		c.Type = ComboTrioPair
		c.MainValue = groupValueOfSize(groups, 3)
	case c.isStraight():
		c.Type = ComboStraight
		c.MainValue = c.maxValue()
	case c.isStraightPair(groups):
		c.Type = ComboStraightPair
		c.MainValue = c.maxValue()
	case c.isAirplane(groups):
		c.Type = ComboAirplane
		c.MainValue = maxGroupValueOfSize(groups, 3)
	case c.isAirplaneSingle(groups):
		c.Type = ComboAirplaneSingle
		c.MainValue = maxGroupValueOfSize(groups, 3)
	case c.isAirplanePair(groups):
		c.Type = ComboAirplanePair
		c.MainValue = maxGroupValueOfSize(groups, 3)
	case c.isFourTwoSingle(groups):
		c.Type = ComboFourTwoSingle
		c.MainValue = groupValueOfSize(groups, 4)
	case c.isFourTwoPair(groups):
		c.Type = ComboFourTwoPair
		c.MainValue = groupValueOfSize(groups, 4)
	default:
		c.Type = ComboInvalid
		c.MainValue = 0
	}
}

// groupByValue 按牌力值统计张数
func (c *Combo) groupByValue() map[int]int {
	groups := make(map[int]int, len(c.Cards))
	for _, card := range c.Cards {
		groups[card.Value()]++
	}
	return groups
}

// maxValue 返回牌中最大的牌力值
func (c *Combo) maxValue() int {
	max := 0
	for _, card := range c.Cards {
		if card.Value() > max {
			max = card.Value()
		}
	}
	return max
}

// isRocket 双王：两张王且大小不同
func (c *Combo) isRocket() bool {
	return len(c.Cards) == 2 &&
		c.Cards[0].IsJoker() && c.Cards[1].IsJoker() &&
		c.Cards[0].Value() != c.Cards[1].Value()
}

// isBomb 炸弹：四张相同点数
func (c *Combo) isBomb(groups map[int]int) bool {
	return len(c.Cards) == 4 && len(groups) == 1
}

// isPair 对子
func (c *Combo) isPair(groups map[int]int) bool {
	return len(c.Cards) == 2 && len(groups) == 1
}

// isTrio 三张
func (c *Combo) isTrio(groups map[int]int) bool {
	return len(c.Cards) == 3 && len(groups) == 1
}

// isTrioSingle 三带一
func (c *Combo) isTrioSingle(groups map[int]int) bool {
	return len(c.Cards) == 4 && len(groups) == 2 && hasGroupOfSize(groups, 3)
}

// isTrioPair 三带二
func (c *Combo) isTrioPair(groups map[int]int) bool {
	return len(c.Cards) == 5 && len(groups) == 2 &&
		hasGroupOfSize(groups, 3) && hasGroupOfSize(groups, 2)
}

// isStraight 顺子：至少 5 张连续的不同点数，不含 2 和王
func (c *Combo) isStraight() bool {
	if len(c.Cards) < 5 {
		return false
	}

	values := make([]int, 0, len(c.Cards))
	for _, card := range c.Cards {
		if card.Value() >= straightMaxValue {
			return false
		}
		values = append(values, card.Value())
	}
	slices.Sort(values)

	for i := 1; i < len(values); i++ {
		if values[i] != values[i-1]+1 {
			return false
		}
	}
	return true
}

// isStraightPair 连对：至少 3 组连续对子，不含 2 和王
func (c *Combo) isStraightPair(groups map[int]int) bool {
	if len(c.Cards) < 6 || len(c.Cards)%2 != 0 || len(groups) < 3 {
		return false
	}

	values := make([]int, 0, len(groups))
	for value, count := range groups {
		if count != 2 {
			return false
		}
		if value >= straightMaxValue {
			return false
		}
		values = append(values, value)
	}
	slices.Sort(values)

	for i := 1; i < len(values); i++ {
		if values[i] != values[i-1]+1 {
			return false
		}
	}
	return true
}

// trioValues 返回所有恰好三张的点数，升序
func trioValues(groups map[int]int) []int {
	var values []int
	for value, count := range groups {
		if count == 3 {
			values = append(values, value)
		}
	}
	slices.Sort(values)
	return values
}

// consecutiveTrios 判断三张组是否构成合法的飞机主体：
// 至少 2 组、连续、且不含 2 和王
func consecutiveTrios(values []int) bool {
	if len(values) < 2 {
		return false
	}
	for i, v := range values {
		if v >= straightMaxValue {
			return false
		}
		if i > 0 && v != values[i-1]+1 {
			return false
		}
	}
	return true
}

// isAirplane 飞机：至少 2 组连续三张，没有其它附带牌
func (c *Combo) isAirplane(groups map[int]int) bool {
	if len(c.Cards) < 6 || len(c.Cards)%3 != 0 {
		return false
	}
	trios := trioValues(groups)
	if !consecutiveTrios(trios) {
		return false
	}
	return len(trios)*3 == len(c.Cards)
}

// isAirplaneSingle 飞机带单牌：每组三张各带一张
// 附带的牌可以是散牌，也允许拆一对当两张单牌
func (c *Combo) isAirplaneSingle(groups map[int]int) bool {
	trios := trioValues(groups)
	if len(trios) < 2 || len(c.Cards) != 4*len(trios) {
		return false
	}
	if !consecutiveTrios(trios) {
		return false
	}

	singles, pairs := 0, 0
	for _, count := range groups {
		switch count {
		case 1:
			singles++
		case 2:
			pairs++
		}
	}
	return singles+pairs*2 == len(trios)
}

// isAirplanePair 飞机带对子：每组三张各带一对
func (c *Combo) isAirplanePair(groups map[int]int) bool {
	trios := trioValues(groups)
	if len(trios) < 2 || len(c.Cards) != 5*len(trios) {
		return false
	}
	if !consecutiveTrios(trios) {
		return false
	}

	pairs := 0
	for _, count := range groups {
		if count == 2 {
			pairs++
		}
	}
	return pairs == len(trios)
}

// isFourTwoSingle 四带二单：一组四张外加任意两张
func (c *Combo) isFourTwoSingle(groups map[int]int) bool {
	return len(c.Cards) == 6 && hasGroupOfSize(groups, 4) && len(groups) >= 2
}

// isFourTwoPair 四带二对：一组四张外加两个对子
func (c *Combo) isFourTwoPair(groups map[int]int) bool {
	if len(c.Cards) != 8 || !hasGroupOfSize(groups, 4) {
		return false
	}
	pairs := 0
	for _, count := range groups {
		if count == 2 {
			pairs++
		}
	}
	return pairs == 2
}

// hasGroupOfSize 判断是否存在指定张数的点数组
func hasGroupOfSize(groups map[int]int, size int) bool {
	for _, count := range groups {
		if count == size {
			return true
		}
	}
	return false
}

// groupValueOfSize 返回任意一个指定张数的点数组的牌力值
func groupValueOfSize(groups map[int]int, size int) int {
	for value, count := range groups {
		if count == size {
			return value
		}
	}
	return 0
}

// maxGroupValueOfSize 返回指定张数的点数组中最大的牌力值
func maxGroupValueOfSize(groups map[int]int, size int) int {
	max := 0
	for value, count := range groups {
		if count == size && value > max {
			max = value
		}
	}
	return max
}

// CanBeat 判断本牌型能否压过 other
// 关系不对称也不自反：同牌型同张数比主牌值，炸弹和火箭跨牌型压制
func (c *Combo) CanBeat(other *Combo) bool {
	// 上家不出，任何有效牌型都可以出
	if other.Type == ComboPass {
		return c.IsValid()
	}

	// 火箭压一切
	if c.Type == ComboRocket {
		return true
	}

	// 炸弹压除火箭外的一切，炸弹之间比点数
	if c.Type == ComboBomb {
		if other.Type == ComboRocket {
			return false
		}
		if other.Type == ComboBomb {
			return c.MainValue > other.MainValue
		}
		return true
	}

	// 普通牌型只能压同牌型、同张数且主牌值更大的
	return c.Type == other.Type &&
		len(c.Cards) == len(other.Cards) &&
		c.MainValue > other.MainValue
}
