package model

import "testing"

func TestFrequencyString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"462.5625", "462.56250"},
		{"146.52", "146.52000"},
		{"156.8", "156.80000"},
		{" 121.5 ", "121.50000"},
		{"50.125", "50.12500"},
	}
	for _, tt := range tests {
		f, err := ParseFrequency(tt.in)
		if err != nil {
			t.Fatalf("ParseFrequency(%q): %v", tt.in, err)
		}
		if got := f.String(); got != tt.want {
			t.Errorf("ParseFrequency(%q).String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseFrequencyRejects(t *testing.T) {
	for _, in := range []string{"", "abc", "-146.52", "0", "NaN"} {
		if _, err := ParseFrequency(in); err == nil {
			t.Errorf("ParseFrequency(%q) expected error", in)
		}
	}
}

func TestParseTone(t *testing.T) {
	tests := []struct {
		in   string
		want Tone
		str  string
	}{
		{"", NoTone, "None"},
		{"None", NoTone, "None"},
		{"off", NoTone, "None"},
		{"100.0", 1000, "100.0"},
		{"67", 670, "67.0"},
		{"141.3Hz", 1413, "141.3"},
	}
	for _, tt := range tests {
		got, err := ParseTone(tt.in)
		if err != nil {
			t.Fatalf("ParseTone(%q): %v", tt.in, err)
		}
		if got != tt.want || got.String() != tt.str {
			t.Errorf("ParseTone(%q) = %d (%s), want %d (%s)", tt.in, got, got, tt.want, tt.str)
		}
	}
	if _, err := ParseTone("loud"); err == nil {
		t.Error("expected error for non-numeric tone")
	}
}

func TestParsePower(t *testing.T) {
	for in, want := range map[string]Power{"high": PowerHigh, "MID": PowerMiddle, "Low": PowerLow, "m": PowerMiddle} {
		got, err := ParsePower(in)
		if err != nil || got != want {
			t.Errorf("ParsePower(%q) = %q, %v; want %q", in, got, err, want)
		}
		if !ValidPowers[got] {
			t.Errorf("%q not in ValidPowers", got)
		}
	}
	if _, err := ParsePower("turbo"); err == nil {
		t.Error("expected error for unknown power")
	}
}

func TestCategories(t *testing.T) {
	cats := Categories()
	if len(cats) != 10 || cats[0] != CategoryTalkgroup || cats[9] != CategoryPopular {
		t.Fatalf("unexpected categories %v", cats)
	}
	c, err := ParseCategory("GMRS_FRS")
	if err != nil || c != CategoryGMRS {
		t.Fatalf("ParseCategory(GMRS_FRS) = %v, %v", c, err)
	}
	if c.ZoneName() != "GMRS/FRS" {
		t.Errorf("ZoneName = %q", c.ZoneName())
	}
	if _, err := ParseCategory("cb"); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestTalkgroupTable(t *testing.T) {
	table := NewTalkgroupTable([]Talkgroup{
		{ID: 91, Name: "Worldwide"},
		{ID: 3100, Name: "USA"},
		{ID: 91, Name: "Other"},
	})
	if table.Len() != 2 {
		t.Fatalf("Len = %d, want 2", table.Len())
	}
	tg, ok := table.Lookup(91)
	if !ok || tg.Name != "Worldwide" {
		t.Errorf("Lookup(91) = %v, %v", tg, ok)
	}
	if _, ok := table.Lookup(9990); ok {
		t.Error("Lookup(9990) should miss")
	}
	if head := table.Head(1); len(head) != 1 || head[0].ID != 91 {
		t.Errorf("Head(1) = %v", head)
	}
	if head := table.Head(10); len(head) != 2 {
		t.Errorf("Head(10) = %v", head)
	}

	var nilTable *TalkgroupTable
	if nilTable.Len() != 0 || nilTable.Head(5) != nil {
		t.Error("nil table should be empty")
	}
}

func TestActiveContact(t *testing.T) {
	ch := Channel{TimeSlot: 2, ContactTS2: 91}
	if ch.ActiveContact() != 91 {
		t.Errorf("ActiveContact = %d", ch.ActiveContact())
	}
	ch.TimeSlot = 1
	if ch.ActiveContact() != 0 {
		t.Errorf("ActiveContact = %d", ch.ActiveContact())
	}
}

func TestCheckCapacity(t *testing.T) {
	if _, over := CheckCapacity("channels", MaxChannels, MaxChannels); over {
		t.Error("count equal to the limit is not a warning")
	}
	w, over := CheckCapacity("zones", 251, MaxZones)
	if !over {
		t.Fatal("expected warning")
	}
	if w.String() != "251 zones exceeds the device limit of 250" {
		t.Errorf("String() = %q", w.String())
	}
	if _, over := CheckCapacity("contacts", 10, 0); over {
		t.Error("zero limit disables the check")
	}
}
