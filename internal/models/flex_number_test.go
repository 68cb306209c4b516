package models

import (
	"encoding/json"
	"testing"
)

func TestParseFlexNumber(t *testing.T) {
	tests := []struct {
		in    string
		want  float64
		valid bool
	}{
		{"250000", 250000, true},
		{"$1,200.50", 1200.5, true},
		{" 40% ", 40, true},
		{"0.4", 0.4, true},
		{"-3", -3, true},
		{"", 0, false},
		{"about 5k", 0, false},
	}
	for _, tt := range tests {
		got := ParseFlexNumber(tt.in)
		if got.Valid != tt.valid || got.Value != tt.want {
			t.Errorf("ParseFlexNumber(%q) = %+v, want {%v %v}", tt.in, got, tt.want, tt.valid)
		}
	}
}

func TestParseFlexNumber_PercentSign(t *testing.T) {
	if f := ParseFlexNumber("0.5%"); !f.Percent || f.Value != 0.5 {
		t.Errorf("expected 0.5 flagged as a percentage, got %+v", f)
	}
	if f := ParseFlexNumber("0.5"); f.Percent {
		t.Errorf("expected no percent flag without a %% sign, got %+v", f)
	}

	out, err := json.Marshal(ParseFlexNumber("0.5%"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != `"0.5%"` {
		t.Errorf("expected the percent sign to survive encoding, got %s", out)
	}
	var back FlexNumber
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !back.Percent || back.Value != 0.5 {
		t.Errorf("expected a percentage after decoding, got %+v", back)
	}
}

func TestFlexNumber_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in    string
		want  float64
		valid bool
	}{
		{`1234.5`, 1234.5, true},
		{`"$250,000"`, 250000, true},
		{`null`, 0, false},
		{`"n/a"`, 0, false},
		{`true`, 0, false},
	}
	for _, tt := range tests {
		var f FlexNumber
		if err := json.Unmarshal([]byte(tt.in), &f); err != nil {
			t.Errorf("Unmarshal(%s) returned error: %v", tt.in, err)
			continue
		}
		if f.Valid != tt.valid || f.Value != tt.want {
			t.Errorf("Unmarshal(%s) = %+v, want {%v %v}", tt.in, f, tt.want, tt.valid)
		}
	}
}

func TestFlexNumber_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(struct {
		A FlexNumber `json:"a"`
		B FlexNumber `json:"b"`
	}{A: Number(12.5)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != `{"a":12.5,"b":null}` {
		t.Errorf("unexpected encoding %s", out)
	}
}

func TestBeneStatus_JSON(t *testing.T) {
	tests := []struct {
		in   string
		want BeneStatus
	}{
		{`"Yes"`, BeneYes},
		{`"No"`, BeneNo},
		{`true`, BeneYes},
		{`false`, BeneNo},
		{`null`, BeneUnset},
		{`"yes"`, BeneStatus("yes")},
		{`1`, BeneYes},
		{`0`, BeneNo},
		{`42`, BeneUnset},
		{`{"answer":"Yes"}`, BeneUnset},
		{`["Yes"]`, BeneUnset},
	}
	for _, tt := range tests {
		var b BeneStatus
		if err := json.Unmarshal([]byte(tt.in), &b); err != nil {
			t.Errorf("Unmarshal(%s) returned error: %v", tt.in, err)
			continue
		}
		if b != tt.want {
			t.Errorf("Unmarshal(%s) = %q, want %q", tt.in, b, tt.want)
		}
	}

	out, err := json.Marshal([]BeneStatus{BeneUnset, BeneYes})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != `[null,"Yes"]` {
		t.Errorf("unexpected encoding %s", out)
	}
}

func TestRawAssets_MalformedBeneDoesNotFailDocument(t *testing.T) {
	doc := `{"bank":[{"id":"1","bank_name":"First Federal","has_bene":1,"approximate_value":100},` +
		`{"id":"2","bank_name":"Credit Union","has_bene":{"x":1},"approximate_value":"$50"}]}`

	var raw RawAssets
	if err := json.Unmarshal([]byte(doc), &raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(raw.Bank) != 2 {
		t.Fatalf("expected 2 bank records, got %+v", raw.Bank)
	}
	if raw.Bank[0].HasBene != BeneYes {
		t.Errorf("expected 1 to decode as Yes, got %q", raw.Bank[0].HasBene)
	}
	if raw.Bank[1].HasBene != BeneUnset || raw.Bank[1].ApproximateValue.Value != 50 {
		t.Errorf("expected an object to decode as unset, got %+v", raw.Bank[1])
	}
}

func TestScenarioContainer_Bucket(t *testing.T) {
	sc := &ScenarioContainer{Buckets: []Bucket{{Key: BucketClientProbate}, {Key: BucketTrust}}}

	b := sc.Bucket(BucketTrust)
	if b == nil {
		t.Fatalf("expected the trust bucket")
	}
	b.Total = 10
	if sc.Buckets[1].Total != 10 {
		t.Errorf("expected Bucket to return a pointer into the container")
	}
	if sc.Bucket(BucketSpouseSole) != nil {
		t.Errorf("expected nil for a bucket the scenario does not have")
	}
}
