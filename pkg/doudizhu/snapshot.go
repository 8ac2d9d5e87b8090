package doudizhu

import "github.com/goccy/go-json"

// CardSnapshot 单张牌的只读视图
type CardSnapshot struct {
	Rank     int    `json:"rank"`
	Suit     string `json:"suit,omitempty"`
	Display  string `json:"display"`
	Selected bool   `json:"selected,omitempty"`
}

// ComboSnapshot 桌面牌型的只读视图
type ComboSnapshot struct {
	Type      string         `json:"type"`
	MainValue int            `json:"mainValue"`
	Cards     []CardSnapshot `json:"cards,omitempty"`
	PlayedBy  string         `json:"playedBy,omitempty"`
}

// PlayerSnapshot 玩家的只读视图
type PlayerSnapshot struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Role      string         `json:"role"`
	Hand      []CardSnapshot `json:"hand"`
	HandCount int            `json:"handCount"`
	IsActive  bool           `json:"isActive"`
	IsWinner  bool           `json:"isWinner"`
}

// GameSnapshot 整局游戏的只读视图
// 供界面或宿主程序展示，序列化与传输由宿主自行决定
type GameSnapshot struct {
	State         string           `json:"state"`
	Players       []PlayerSnapshot `json:"players"`
	LandlordCards []CardSnapshot   `json:"landlordCards,omitempty"`
	LastCombo     *ComboSnapshot   `json:"lastCombo,omitempty"`
}

func snapshotCards(cards Cards) []CardSnapshot {
	if len(cards) == 0 {
		return nil
	}
	out := make([]CardSnapshot, len(cards))
	for i, c := range cards {
		out[i] = CardSnapshot{
			Rank:     c.Value(),
			Suit:     c.Suit.String(),
			Display:  c.String(),
			Selected: c.Selected,
		}
	}
	return out
}

// Snapshot 导出当前游戏状态的深拷贝视图
func (g *Game) Snapshot() GameSnapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	snap := GameSnapshot{
		State:         g.state.String(),
		LandlordCards: snapshotCards(g.landlordCards),
	}

	for _, p := range g.players {
		snap.Players = append(snap.Players, PlayerSnapshot{
			ID:        p.ID,
			Name:      p.Name,
			Role:      p.Role.String(),
			Hand:      snapshotCards(p.Hand),
			HandCount: p.HandCount(),
			IsActive:  p.IsActive,
			IsWinner:  p.IsWinner,
		})
	}

	if !g.lastCombo.IsEmpty() {
		snap.LastCombo = &ComboSnapshot{
			Type:      g.lastCombo.Type.String(),
			MainValue: g.lastCombo.MainValue,
			Cards:     snapshotCards(g.lastCombo.Cards),
			PlayedBy:  g.lastOwnerID,
		}
	}
	return snap
}

// Encode 序列化为 JSON
func (s GameSnapshot) Encode() ([]byte, error) {
	return json.Marshal(s)
}

// DecodeSnapshot 从 JSON 反序列化
func DecodeSnapshot(data []byte) (GameSnapshot, error) {
	var s GameSnapshot
	err := json.Unmarshal(data, &s)
	return s, err
}
