package doudizhu

import "math/rand/v2"

// DeckSize 一副完整的牌共 54 张（52 张普通牌 + 大小王）
const DeckSize = 54

// Deck 牌堆，持有一副 54 张的牌
// rng 可注入，便于测试时使用固定种子
type Deck struct {
	cards Cards
	rng   *rand.Rand
}

// NewDeck 创建一副完整的牌堆并洗牌
// rng 为 nil 时使用随机种子
func NewDeck(rng *rand.Rand) *Deck {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	d := &Deck{rng: rng}
	d.Reset()
	return d
}

// Reset 重建 54 张的完整牌堆并洗牌
func (d *Deck) Reset() {
	d.initialize()
	d.Shuffle()
}

// initialize 按固定顺序重建牌堆
func (d *Deck) initialize() {
	d.cards = make(Cards, 0, DeckSize)

	suits := []Suit{SuitHeart, SuitDiamond, SuitClub, SuitSpade}
	ranks := []Rank{
		Rank3, Rank4, Rank5, Rank6, Rank7, Rank8, Rank9,
		Rank10, RankJ, RankQ, RankK, RankA, Rank2,
	}

	for _, suit := range suits {
		for _, rank := range ranks {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}
	d.cards = append(d.cards, NewJoker(RankBlackJoker))
	d.cards = append(d.cards, NewJoker(RankRedJoker))
}

// Shuffle 洗牌，Fisher–Yates 均匀打乱
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal 发牌，从牌堆头部取出 count 张
// 剩余不足 count 张时返回全部剩余的牌，不报错
func (d *Deck) Deal(count int) Cards {
	if count < 0 {
		count = 0
	}
	if count > len(d.cards) {
		count = len(d.cards)
	}
	dealt := make(Cards, count)
	copy(dealt, d.cards[:count])
	d.cards = d.cards[count:]
	return dealt
}

// Remaining 返回剩余牌数
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Cards 返回剩余牌的副本
func (d *Deck) Cards() Cards {
	return d.cards.Clone()
}
