package doudizhu

import (
	"errors"
	"testing"
)

// TestNewPlayer 空ID自动生成
func TestNewPlayer(t *testing.T) {
	p := NewPlayer("7", "测试玩家")
	if p.ID != "7" || p.Name != "测试玩家" {
		t.Errorf("ID/Name 错误: %v %v", p.ID, p.Name)
	}
	if p.Role != RoleFarmer {
		t.Error("默认角色应为农民")
	}

	p2 := NewPlayer("", "匿名")
	if p2.ID == "" {
		t.Error("空ID应自动生成")
	}
}

// TestPlayer_AddCards 加牌后手牌按牌力从大到小有序
func TestPlayer_AddCards(t *testing.T) {
	p := NewPlayer("1", "玩家1")
	p.AddCards(Cards{NewCard(Rank5, SuitSpade), NewCard(RankK, SuitHeart)})
	p.AddCards(Cards{NewJoker(RankRedJoker), NewCard(Rank3, SuitClub)})

	if p.HandCount() != 4 {
		t.Fatalf("HandCount = %d, want 4", p.HandCount())
	}
	for i := 1; i < len(p.Hand); i++ {
		if p.Hand[i].Value() > p.Hand[i-1].Value() {
			t.Fatal("手牌应从大到小有序")
		}
	}
}

// TestPlayer_PlayCards 测试出牌与契约违反
func TestPlayer_PlayCards(t *testing.T) {
	p := NewPlayer("1", "玩家1")
	p.AddCards(Cards{
		NewCard(Rank5, SuitSpade),
		NewCard(Rank5, SuitHeart),
		NewCard(Rank9, SuitClub),
	})

	if err := p.PlayCards(Cards{NewCard(Rank5, SuitSpade)}); err != nil {
		t.Fatalf("出牌失败: %v", err)
	}
	if p.HandCount() != 2 {
		t.Errorf("HandCount = %d, want 2", p.HandCount())
	}

	// 打不在手中的牌：报错且手牌不变
	err := p.PlayCards(Cards{NewCard(RankK, SuitSpade)})
	if !errors.Is(err, ErrCardNotInHand) {
		t.Errorf("err = %v, want ErrCardNotInHand", err)
	}
	if p.HandCount() != 2 {
		t.Error("失败时手牌应保持不变")
	}

	// 部分在手中也整体失败
	err = p.PlayCards(Cards{NewCard(Rank9, SuitClub), NewCard(RankK, SuitSpade)})
	if !errors.Is(err, ErrCardNotInHand) {
		t.Errorf("err = %v, want ErrCardNotInHand", err)
	}
	if p.HandCount() != 2 {
		t.Error("部分失败时手牌也应保持不变")
	}
}

// TestPlayer_PlaySelected 测试按选中出牌
func TestPlayer_PlaySelected(t *testing.T) {
	p := NewPlayer("1", "玩家1")
	p.AddCards(Cards{
		NewCard(Rank5, SuitSpade),
		NewCard(Rank7, SuitHeart),
		NewCard(Rank9, SuitClub),
	})

	if _, err := p.PlaySelected(); !errors.Is(err, ErrNoCardSelected) {
		t.Errorf("未选中时 err = %v, want ErrNoCardSelected", err)
	}

	p.Hand[0].Selected = true
	p.Hand[2].Selected = true
	played, err := p.PlaySelected()
	if err != nil {
		t.Fatalf("出选中牌失败: %v", err)
	}
	if len(played) != 2 || p.HandCount() != 1 {
		t.Errorf("played=%d hand=%d, want 2/1", len(played), p.HandCount())
	}
}

// TestPlayer_Reset 重置清空手牌并回到农民
func TestPlayer_Reset(t *testing.T) {
	p := NewPlayer("1", "玩家1")
	p.AddCards(Cards{NewCard(Rank5, SuitSpade)})
	p.Role = RoleLandlord
	p.IsActive = true
	p.IsWinner = true

	p.Reset()
	if p.HandCount() != 0 || p.Role != RoleFarmer || p.IsActive || p.IsWinner {
		t.Errorf("重置不完整: %+v", p)
	}
}
