package doudizhu

import (
	"errors"

	"github.com/google/uuid"
)

// Role 玩家角色
type Role uint8

const (
	RoleFarmer   Role = iota // 农民（默认）
	RoleLandlord             // 地主
)

// String 返回角色名称
func (r Role) String() string {
	if r == RoleLandlord {
		return "LANDLORD"
	}
	return "FARMER"
}

// 出牌相关的契约错误
var (
	ErrCardNotInHand  = errors.New("card not in hand")
	ErrNoCardSelected = errors.New("no card selected")
)

// Player 玩家信息
type Player struct {
	ID       string // 玩家ID
	Name     string // 显示名称
	Role     Role   // 角色，默认农民
	Hand     Cards  // 当前手牌
	IsActive bool   // 是否轮到该玩家行动
	IsWinner bool   // 是否为赢家
}

// NewPlayer 创建一个新玩家
// id 为空时自动生成
func NewPlayer(id, name string) *Player {
	if id == "" {
		id = uuid.NewString()
	}
	return &Player{
		ID:   id,
		Name: name,
	}
}

// AddCards 将牌加入手牌并重新排序
func (p *Player) AddCards(cards Cards) {
	p.Hand = append(p.Hand, cards...)
	p.Hand.Sort()
}

// PlayCards 从手牌打出指定的牌
// 任何一张不在手牌中即返回 ErrCardNotInHand，手牌不变
// 打出不在手中的牌属于调用方契约违反，不是规则层面的失败
func (p *Player) PlayCards(cards Cards) error {
	remain, ok := p.Hand.Remove(cards)
	if !ok {
		return ErrCardNotInHand
	}
	p.Hand = remain
	return nil
}

// SelectedCards 返回手牌中选中的牌
func (p *Player) SelectedCards() Cards {
	return p.Hand.Selected()
}

// PlaySelected 打出所有选中的牌
func (p *Player) PlaySelected() (Cards, error) {
	selected := p.SelectedCards()
	if len(selected) == 0 {
		return nil, ErrNoCardSelected
	}
	if err := p.PlayCards(selected); err != nil {
		return nil, err
	}
	return selected, nil
}

// ClearSelection 清除手牌的所有选中状态
func (p *Player) ClearSelection() {
	p.Hand.ClearSelection()
}

// HandCount 返回手牌数量
func (p *Player) HandCount() int {
	return len(p.Hand)
}

// Reset 重置玩家状态：清空手牌，角色回到农民，清除行动和胜负标记
func (p *Player) Reset() {
	p.Hand = nil
	p.Role = RoleFarmer
	p.IsActive = false
	p.IsWinner = false
}
