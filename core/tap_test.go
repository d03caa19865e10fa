package core

import "testing"

func TestTapBlockedDayNotifiesHost(t *testing.T) {
	p := Props{Range: true, Focus: FocusStart, IsDateBlocked: blockedOn("2024-03-07"), DisableClickable: true}
	res := Tap(d("2024-03-07"), p)
	if res.Kind != TapDisabled || res.Day != d("2024-03-07") {
		t.Fatalf("unexpected result %+v", res)
	}

	var clicked Date
	changed := false
	res.Dispatch(Callbacks{
		OnDatesChange:    func(DatesChange) { changed = true },
		OnDisableClicked: func(day Date) { clicked = day },
	})
	if changed {
		t.Fatalf("blocked tap must not change the selection")
	}
	if clicked != d("2024-03-07") {
		t.Fatalf("disable callback got %s", clicked)
	}
}

func TestTapBlockedDayWithoutHandlerIsNoop(t *testing.T) {
	p := Props{IsDateBlocked: blockedOn("2024-03-07")}
	res := Tap(d("2024-03-07"), p)
	if res.Kind != TapNone {
		t.Fatalf("kind = %v, want TapNone", res.Kind)
	}
	res.Dispatch(Callbacks{})
	if TapCmd(res) != nil {
		t.Fatalf("expected no command for a dropped tap")
	}
}

func TestTapSingleMode(t *testing.T) {
	p := Props{Date: d("2024-03-01")}
	res := Tap(d("2024-03-09"), p)
	if res.Kind != TapDatesChange || res.Change.Range || res.Change.Date != d("2024-03-09") {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestTapRangeSwapExample(t *testing.T) {
	p := Props{Range: true, Start: d("2024-03-05"), Focus: FocusEnd}
	got := Tap(d("2024-03-03"), p).Change.RangeSelection()
	want := RangeSelection{Start: d("2024-03-03"), Focus: FocusEnd}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestTapRangeCommitExample(t *testing.T) {
	p := Props{Range: true, Start: d("2024-03-05"), Focus: FocusEnd}
	got := Tap(d("2024-03-10"), p).Change.RangeSelection()
	want := RangeSelection{Start: d("2024-03-05"), End: d("2024-03-10"), Focus: FocusStart}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestTapBlockedRangePolicyResets(t *testing.T) {
	p := Props{
		Range:                             true,
		BlockRangeWhenBlockedDateInPeriod: true,
		Start:                             d("2024-03-05"),
		Focus:                             FocusEnd,
		IsDateBlocked:                     blockedOn("2024-03-07"),
	}
	res := Tap(d("2024-03-10"), p)
	if !res.RangeBlocked {
		t.Fatalf("expected policy veto")
	}
	got := res.Change.RangeSelection()
	want := RangeSelection{Start: d("2024-03-10"), Focus: FocusStart}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestTapBlockedRangePolicyOffCommits(t *testing.T) {
	p := Props{
		Range:         true,
		Start:         d("2024-03-05"),
		Focus:         FocusEnd,
		IsDateBlocked: blockedOn("2024-03-07"),
	}
	res := Tap(d("2024-03-10"), p)
	if res.RangeBlocked || res.Change.End != d("2024-03-10") {
		t.Fatalf("expected commit without policy, got %+v", res)
	}
}

func TestTapDispatchDeliversChange(t *testing.T) {
	p := Props{Range: true, Focus: FocusStart}
	var got DatesChange
	Tap(d("2024-03-05"), p).Dispatch(Callbacks{OnDatesChange: func(c DatesChange) { got = c }})
	if !got.Range || got.Start != d("2024-03-05") || got.Focus != FocusEnd {
		t.Fatalf("unexpected change %+v", got)
	}
}

func TestTapCmdMessages(t *testing.T) {
	p := Props{Range: true, Focus: FocusStart}
	msg := TapCmd(Tap(d("2024-03-05"), p))()
	changed, ok := msg.(DatesChangedMsg)
	if !ok || changed.Change.Start != d("2024-03-05") {
		t.Fatalf("unexpected msg %#v", msg)
	}

	p.IsDateBlocked = blockedOn("2024-03-06")
	p.DisableClickable = true
	msg = TapCmd(Tap(d("2024-03-06"), p))()
	if disabled, ok := msg.(DisabledClickedMsg); !ok || disabled.Date != d("2024-03-06") {
		t.Fatalf("unexpected msg %#v", msg)
	}
}

func TestIsDaySelected(t *testing.T) {
	single := Props{Date: d("2024-03-05")}
	if !IsDaySelected(d("2024-03-05"), single) || IsDaySelected(d("2024-03-06"), single) {
		t.Fatalf("single mode highlight wrong")
	}
	if IsDaySelected(d("2024-03-05"), Props{}) {
		t.Fatalf("nothing selected should highlight nothing")
	}

	full := Props{Range: true, Start: d("2024-03-05"), End: d("2024-03-10")}
	for day := d("2024-03-01"); day.SameOrBefore(d("2024-03-15")); day = day.AddDays(1) {
		want := day.SameOrAfter(full.Start) && day.SameOrBefore(full.End)
		if got := IsDaySelected(day, full); got != want {
			t.Fatalf("IsDaySelected(%s) = %v, want %v", day, got, want)
		}
	}

	onlyStart := Props{Range: true, Start: d("2024-03-05")}
	if !IsDaySelected(d("2024-03-05"), onlyStart) || IsDaySelected(d("2024-03-06"), onlyStart) {
		t.Fatalf("start-only highlight wrong")
	}
	onlyEnd := Props{Range: true, End: d("2024-03-08")}
	if !IsDaySelected(d("2024-03-08"), onlyEnd) || IsDaySelected(d("2024-03-05"), onlyEnd) {
		t.Fatalf("end-only highlight wrong")
	}
}
