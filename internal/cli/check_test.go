package cli

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestCheckJSONFound(t *testing.T) {
	withEmbeddedDataset(t)
	jsonOutput = true

	out := captureStdout(t, func() {
		if err := checkCmd.RunE(checkCmd, []string{"696"}); err != nil {
			t.Fatalf("checkCmd.RunE: %v", err)
		}
	})

	resp := decodeResponse(t, out)
	if !resp.OK {
		t.Fatalf("expected ok=true; out=%s", out)
	}

	var data struct {
		Query  string `json:"query"`
		ID     string `json:"id"`
		Rank   int    `json:"rank"`
		Tier   string `json:"tier"`
		Traits []struct {
			Name      string  `json:"name"`
			Intensity string  `json:"intensity"`
			BarWidth  float64 `json:"bar_width"`
		} `json:"traits"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.ID != "696" || data.Rank != 51 {
		t.Fatalf("got #%s rank %d, want #696 rank 51", data.ID, data.Rank)
	}
	if data.Tier != "Rare" {
		t.Fatalf("tier = %q, want Rare", data.Tier)
	}
	if len(data.Traits) == 0 {
		t.Fatal("expected trait breakdown")
	}
	for _, tr := range data.Traits {
		if tr.BarWidth < 0 || tr.BarWidth > 1 {
			t.Fatalf("trait %s bar width %v outside [0,1]", tr.Name, tr.BarWidth)
		}
		if tr.Intensity == "" {
			t.Fatalf("trait %s has no intensity", tr.Name)
		}
	}
	if resp.Meta == nil || resp.Meta.Dataset == "" {
		t.Fatalf("expected dataset meta; out=%s", out)
	}
}

func TestCheckJSONErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode string
		wantMsg  string
	}{
		{name: "missing", args: []string{"99999"}, wantCode: ErrNotFound, wantMsg: "NFT #99999 not found"},
		{name: "empty", args: []string{""}, wantCode: ErrEmptyQuery, wantMsg: "Please enter an NFT ID"},
		{name: "no argument", args: nil, wantCode: ErrEmptyQuery, wantMsg: "Please enter an NFT ID"},
		{name: "whitespace", args: []string{"   "}, wantCode: ErrEmptyQuery, wantMsg: "Please enter an NFT ID"},
		{name: "untrimmed", args: []string{" 696"}, wantCode: ErrNotFound, wantMsg: "NFT # 696 not found"},
		{name: "hash prefix", args: []string{"#696"}, wantCode: ErrNotFound, wantMsg: "NFT ##696 not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withEmbeddedDataset(t)
			jsonOutput = true

			out := captureStdout(t, func() {
				if err := checkCmd.RunE(checkCmd, tt.args); err != nil {
					t.Fatalf("checkCmd.RunE returned error in JSON mode: %v", err)
				}
			})

			resp := decodeResponse(t, out)
			if resp.OK || resp.Error == nil {
				t.Fatalf("expected error response; out=%s", out)
			}
			if resp.Error.Code != tt.wantCode {
				t.Fatalf("code = %q, want %q", resp.Error.Code, tt.wantCode)
			}
			if resp.Error.Message != tt.wantMsg {
				t.Fatalf("message = %q, want %q", resp.Error.Message, tt.wantMsg)
			}
		})
	}
}

func TestCheckTextMode(t *testing.T) {
	withEmbeddedDataset(t)

	out := captureStdout(t, func() {
		if err := checkCmd.RunE(checkCmd, []string{"3"}); err != nil {
			t.Fatalf("checkCmd.RunE: %v", err)
		}
	})
	for _, want := range []string{"Efrog #3", "#1", "Legendary", "Trait Breakdown"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	err := checkCmd.RunE(checkCmd, []string{"abc"})
	if err == nil || err.Error() != "NFT #abc not found" {
		t.Fatalf("got error %v, want NFT #abc not found", err)
	}
}
