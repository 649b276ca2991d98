package sow

import (
	"testing"

	"github.com/hts-tools/sowgen-go/pkg/sowgen/models"
)

func TestAutoFillCountsAndCables(t *testing.T) {
	items := []models.LineItem{
		{Description: "Dome Camera X1", Quantity: 4, PartNumber: "CAM-100"},
		{Description: "Cat6 Cable 1000ft", Quantity: 2, PartNumber: "CBL-6"},
	}

	vars := AutoFill(items)

	if vars["NEW_CAMERA_TOTAL"] != "4" {
		t.Errorf("NEW_CAMERA_TOTAL = %q, expected 4", vars["NEW_CAMERA_TOTAL"])
	}
	if vars["CAMERA_COUNT"] != "4" {
		t.Errorf("CAMERA_COUNT = %q, expected 4", vars["CAMERA_COUNT"])
	}
	if vars["CAT6_COUNT"] != "2" {
		t.Errorf("CAT6_COUNT = %q, expected 2", vars["CAT6_COUNT"])
	}
	if _, ok := vars["POE_SWITCH_COUNT"]; ok {
		t.Error("POE_SWITCH_COUNT should not be emitted without matching items")
	}
}

func TestAutoFillSwitchInjectorDisambiguation(t *testing.T) {
	items := []models.LineItem{
		{Description: "8-port PoE switch", Quantity: 2},
		{Description: "Gigabit PoE injector", Quantity: 3},
		{Description: "PoE adapter midspan", Quantity: 1},
	}

	vars := AutoFill(items)

	if vars["POE_SWITCH_COUNT"] != "2" {
		t.Errorf("POE_SWITCH_COUNT = %q, expected 2", vars["POE_SWITCH_COUNT"])
	}
	if vars["POE_INJECTOR_COUNT"] != "4" {
		t.Errorf("POE_INJECTOR_COUNT = %q, expected 4 (switch excluded)", vars["POE_INJECTOR_COUNT"])
	}
}

func TestAutoFillBrandPlurality(t *testing.T) {
	items := []models.LineItem{
		{Description: "Dome Camera", Quantity: 2, Vendor: "Axis"},
		{Description: "Bullet Camera", Quantity: 5, Vendor: "Hanwha"},
		{Description: "Turret Camera", Quantity: 1, Vendor: "Axis"},
	}

	vars := AutoFill(items)

	if vars["CAMERA_BRAND"] != "Hanwha" {
		t.Errorf("CAMERA_BRAND = %q, expected plurality vendor Hanwha", vars["CAMERA_BRAND"])
	}
}

func TestAutoFillVendorlessItemsEmitNoBrand(t *testing.T) {
	items := []models.LineItem{{Description: "Dome Camera", Quantity: 4}}
	vars := AutoFill(items)
	if _, ok := vars["CAMERA_BRAND"]; ok {
		t.Error("CAMERA_BRAND should not be emitted without vendor data")
	}
}

func TestAutoFillVMSPlatform(t *testing.T) {
	items := []models.LineItem{
		{Description: "Milestone XProtect Professional+", Quantity: 1},
	}
	vars := AutoFill(items)
	if vars["VMS_PLATFORM"] != "Milestone XProtect Professional+" {
		t.Errorf("VMS_PLATFORM = %q", vars["VMS_PLATFORM"])
	}
}

func TestMergeVariablesPreservesUserValues(t *testing.T) {
	dst := map[string]string{
		"NEW_CAMERA_TOTAL": "12",
		"CAT6_COUNT":       "",
	}
	src := map[string]string{
		"NEW_CAMERA_TOTAL": "4",
		"CAT6_COUNT":       "2",
		"LICENSE_COUNT":    "6",
	}

	set := MergeVariables(dst, src)

	if dst["NEW_CAMERA_TOTAL"] != "12" {
		t.Errorf("user value overwritten: NEW_CAMERA_TOTAL = %q", dst["NEW_CAMERA_TOTAL"])
	}
	if dst["CAT6_COUNT"] != "2" {
		t.Errorf("empty value not filled: CAT6_COUNT = %q", dst["CAT6_COUNT"])
	}
	if dst["LICENSE_COUNT"] != "6" {
		t.Errorf("missing key not filled: LICENSE_COUNT = %q", dst["LICENSE_COUNT"])
	}
	if len(set) != 2 {
		t.Errorf("set keys = %v, expected CAT6_COUNT and LICENSE_COUNT", set)
	}
}
