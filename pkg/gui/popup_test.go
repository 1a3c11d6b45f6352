package gui

import "testing"

func testPopup() *Popup {
	return NewPopup("Follow Reference", []PopupItem{
		{Label: "Sheet 6083 refers to", IsHeader: true},
		{Key: "1", Label: "Sheet 6084"},
		{Key: "2", Label: "Sheet 6085"},
		{Label: "More", IsHeader: true},
		{Key: "3", Label: "Sheet 6090"},
	}, &Theme{})
}

func TestPopupSkipsHeaders(t *testing.T) {
	p := testPopup()
	if p.Selected != 1 {
		t.Fatalf("initial selection = %d, expected first selectable item 1", p.Selected)
	}

	p.MoveUp()
	if p.Selected != 1 {
		t.Errorf("MoveUp() past the header moved to %d", p.Selected)
	}

	p.MoveDown()
	p.MoveDown()
	if p.Selected != 4 {
		t.Errorf("MoveDown() should skip the header, got %d", p.Selected)
	}

	p.MoveDown()
	if p.Selected != 4 {
		t.Errorf("MoveDown() on the last item moved to %d", p.Selected)
	}

	if item := p.GetSelectedItem(); item == nil || item.Label != "Sheet 6090" {
		t.Errorf("GetSelectedItem() = %+v", item)
	}
}

func TestPopupSelect(t *testing.T) {
	p := testPopup()
	if p.Select(3) {
		t.Error("Select() on a header should be refused")
	}
	if p.Select(9) {
		t.Error("Select() out of range should be refused")
	}
	if !p.Select(2) || p.Selected != 2 {
		t.Error("Select(2) should select the item")
	}
	if p.SelectableCount() != 3 {
		t.Errorf("SelectableCount() = %d, expected 3", p.SelectableCount())
	}
}

func TestPopupWithoutSelectableItems(t *testing.T) {
	p := NewPopup("Empty", []PopupItem{{Label: "Nothing here", IsHeader: true}}, &Theme{})
	if p.Selected != -1 || p.GetSelectedItem() != nil {
		t.Errorf("popup of headers should have no selection, got %d", p.Selected)
	}
	p.MoveDown()
	if p.Selected != -1 {
		t.Errorf("MoveDown() selected a header: %d", p.Selected)
	}
}
