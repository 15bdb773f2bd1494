package core

import "testing"

func TestIndicatorBands(t *testing.T) {
	cases := []struct {
		msg                Message
		red, yellow, green bool
	}{
		{Message{Kind: KindDistance, CM: 5}, true, false, false},
		{Message{Kind: KindDistance, CM: 10}, true, false, false},
		{Message{Kind: KindDistance, CM: 11}, false, true, false},
		{Message{Kind: KindDistance, CM: 20}, false, true, false},
		{Message{Kind: KindDistance, CM: 21}, false, false, true},
		{Message{Kind: KindDistance, CM: 1000}, false, false, true},
		{Message{Kind: KindOutOfRange}, false, false, false},
	}

	for _, c := range cases {
		red, yellow, green := &fakeOutput{}, &fakeOutput{}, &fakeOutput{}
		NewIndicator(red, yellow, green).Show(c.msg)
		if red.high != c.red || yellow.high != c.yellow || green.high != c.green {
			t.Errorf("%+v: got r=%v y=%v g=%v, want r=%v y=%v g=%v",
				c.msg, red.high, yellow.high, green.high, c.red, c.yellow, c.green)
		}
	}
}

func TestIndicatorBlinksWhenNear(t *testing.T) {
	red, yellow, green := &fakeOutput{}, &fakeOutput{}, &fakeOutput{}
	ind := NewIndicator(red, yellow, green)
	near := Message{Kind: KindDistance, CM: 2}

	var seen []bool
	for i := 0; i < 4; i++ {
		ind.Show(near)
		seen = append(seen, red.high)
	}

	want := []bool{true, false, true, false}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("Expected red to toggle %v, got %v", want, seen)
		}
	}
}
