package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/npillmayer/runoff"
)

// Profile is the optional TOML layout profile. Unset values keep the
// built-in defaults; requests in the document override both.
type Profile struct {
	Layout LayoutProfile `toml:"layout"`
	Page   PageProfile   `toml:"page"`
}

// LayoutProfile maps line composition settings.
type LayoutProfile struct {
	LineLength  *int    `toml:"line-length"`
	Indent      *int    `toml:"indent"`
	LineSpacing *int    `toml:"line-spacing"`
	Adjust      *string `toml:"adjust"`
	Hyphenate   *bool   `toml:"hyphenate"`
	Threshold   *int    `toml:"hyphen-threshold"`
}

// PageProfile maps pagination settings.
type PageProfile struct {
	PageLength *int  `toml:"page-length"`
	PageOffset *int  `toml:"page-offset"`
	Titles     *bool `toml:"titles"`
	RomanPages *bool `toml:"roman-pages"`
}

func (p Profile) apply(cfg *runoff.LayoutConfig) {
	applyInt(&cfg.LineLength, p.Layout.LineLength)
	applyInt(&cfg.Indent, p.Layout.Indent)
	applyInt(&cfg.LineSpacing, p.Layout.LineSpacing)
	if p.Layout.Adjust != nil {
		cfg.Adjust = adjustMode(*p.Layout.Adjust)
	}
	applyBool(&cfg.Hyphenate, p.Layout.Hyphenate)
	applyInt(&cfg.HyphenThreshold, p.Layout.Threshold)

	applyInt(&cfg.PageLength, p.Page.PageLength)
	applyInt(&cfg.PageOffset, p.Page.PageOffset)
	applyBool(&cfg.Titles, p.Page.Titles)
	applyBool(&cfg.RomanPages, p.Page.RomanPages)
}

// adjustMode folds unknown spellings to full adjustment, matching the
// argument handling of the .ad request.
func adjustMode(s string) runoff.AdjustMode {
	switch s {
	case "left":
		return runoff.AdjustLeft
	case "right":
		return runoff.AdjustRight
	case "center":
		return runoff.AdjustCenter
	default:
		return runoff.AdjustBoth
	}
}

func applyInt(target *int, value *int) {
	if value == nil {
		return
	}
	*target = *value
}

func applyBool(target *bool, value *bool) {
	if value == nil {
		return
	}
	*target = *value
}

// loadProfile reads a TOML profile from the given path. A missing file
// is not an error.
func loadProfile(path string) (Profile, error) {
	if path == "" {
		return Profile{}, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Profile{}, nil
		}
		return Profile{}, fmt.Errorf("failed to stat profile: %w", err)
	}
	var p Profile
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return Profile{}, fmt.Errorf("failed to decode profile: %w", err)
	}
	return p, nil
}

func defaultProfilePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "runoff", "profile.toml")
}
