package sow

import (
	"sort"
	"strconv"
	"strings"

	"github.com/hts-tools/sowgen-go/pkg/sowgen/models"
)

// countRule derives one count variable from matched line items. Rules
// are evaluated in order; disambiguation lives on the rule itself
// rather than in scattered conditionals.
type countRule struct {
	variable string
	// keywords match case-insensitively as substrings of the
	// description and (unless descOnly) the part number.
	keywords []string
	descOnly bool
	// also, when set, qualifies an item even without a keyword hit.
	also func(desc string) bool
	// exclude disqualifies items whose description contains it.
	exclude string
}

var countRules = []countRule{
	{variable: "NEW_CAMERA_TOTAL", keywords: cameraKeywords},
	{variable: "CAT6_COUNT", keywords: []string{"cat6", "cat 6", "cable", "cat5", "cat 5", "utp", "ethernet"}},
	{variable: "PTP_COUNT", keywords: []string{"point-to-point", "point to point", "ptp", "wireless bridge", "airfiber", "nanobeam", "nanostation", "litebeam"}},
	{variable: "LICENSE_COUNT", keywords: []string{"license", "licence", "subscription", "lic"}},
	{
		// A PoE switch must actually say "switch"; otherwise injectors
		// matching "poe" would double-count here.
		variable: "POE_SWITCH_COUNT",
		keywords: []string{"poe switch", "poe+ switch", "network switch", "managed switch", "unmanaged switch"},
		descOnly: true,
		also: func(desc string) bool {
			return strings.Contains(desc, "switch") && strings.Contains(desc, "poe")
		},
	},
	{
		// Injectors never say "switch"; anything that does belongs to
		// the rule above.
		variable: "POE_INJECTOR_COUNT",
		keywords: []string{"poe injector", "poe adapter", "midspan", "injector", "u-poe", "ins-3af", "poe-24", "poe-48", "poe-54"},
		exclude:  "switch",
	},
	{variable: "MOUNT_COUNT", keywords: []string{"mount", "bracket", "arm", "pendant", "pole adapter", "junction box", "j-box", "wall mount", "corner", "gooseneck", "parapet"}},
	{variable: "SERVER_TOTAL", keywords: serverKeywords},
	{variable: "NVR_COUNT", keywords: serverKeywords},
	{variable: "CAMERA_LICENSES", keywords: []string{"camera license", "channel license", "cam license", "device license"}},
	{variable: "CAMERA_COUNT", keywords: cameraKeywords},
}

var (
	cameraKeywords = []string{"camera", "cam", "dome", "bullet", "turret", "ptz", "ip cam", "fisheye", "panoramic", "multisensor", "multi-sensor", "fixed dome", "fixed lens", "mini dome", "box cam", "wedge", "vandal", "eyeball"}
	serverKeywords = []string{"server", "nvr", "recorder", "recording server"}
	vmsKeywords    = []string{"vms", "milestone", "genetec", "exacq", "wisenet wave", "nx witness", "video management"}
)

// AutoFill derives template variable values from parsed line items:
// category counts by keyword match, brands by plurality vendor
// quantity. Only non-zero/non-empty values are emitted; callers merge
// the result with MergeVariables so user-entered values are preserved.
func AutoFill(items []models.LineItem) map[string]string {
	vars := make(map[string]string)

	for _, rule := range countRules {
		total := sumQuantity(matchRule(items, rule))
		if total > 0 {
			vars[rule.variable] = formatCount(total)
		}
	}

	if brand := pluralityVendor(matchKeywords(items, cameraKeywords, false)); brand != "" {
		vars["CAMERA_BRAND"] = brand
	}
	if brand := pluralityVendor(matchKeywords(items, serverKeywords, false)); brand != "" {
		vars["SERVER_BRAND"] = brand
	}

	if vms := matchKeywords(items, vmsKeywords, false); len(vms) > 0 {
		if vms[0].Description != "" {
			vars["VMS_PLATFORM"] = vms[0].Description
		} else if vms[0].Vendor != "" {
			vars["VMS_PLATFORM"] = vms[0].Vendor
		}
	}

	return vars
}

// MergeVariables copies values from src into dst only where dst's value
// is empty, preserving user overrides. Returns the keys that were set.
func MergeVariables(dst, src map[string]string) []string {
	var set []string
	for key, val := range src {
		if strings.TrimSpace(dst[key]) != "" {
			continue
		}
		dst[key] = val
		set = append(set, key)
	}
	sort.Strings(set)
	return set
}

func matchRule(items []models.LineItem, rule countRule) []models.LineItem {
	var out []models.LineItem
	for _, item := range items {
		desc := strings.ToLower(item.Description)
		if rule.exclude != "" && strings.Contains(desc, rule.exclude) {
			continue
		}
		matched := anyKeyword(desc, rule.keywords)
		if !matched && !rule.descOnly {
			matched = anyKeyword(strings.ToLower(item.PartNumber), rule.keywords)
		}
		if !matched && rule.also != nil {
			matched = rule.also(desc)
		}
		if matched {
			out = append(out, item)
		}
	}
	return out
}

func matchKeywords(items []models.LineItem, keywords []string, descOnly bool) []models.LineItem {
	return matchRule(items, countRule{keywords: keywords, descOnly: descOnly})
}

func anyKeyword(s string, keywords []string) bool {
	if s == "" {
		return false
	}
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func sumQuantity(items []models.LineItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Quantity
	}
	return sum
}

// pluralityVendor tallies quantity per vendor over the matched items
// and returns the vendor with the highest total, or "" when no item
// carries a vendor.
func pluralityVendor(items []models.LineItem) string {
	counts := make(map[string]float64)
	for _, item := range items {
		if item.Vendor != "" {
			counts[item.Vendor] += item.Quantity
		}
	}
	best := ""
	for vendor, qty := range counts {
		if best == "" || qty > counts[best] || (qty == counts[best] && vendor < best) {
			best = vendor
		}
	}
	return best
}

// formatCount renders a quantity without a trailing ".0" for whole
// numbers.
func formatCount(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
