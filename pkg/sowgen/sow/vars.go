package sow

// Variable describes one template variable exposed to the UI.
type Variable struct {
	// Key is the placeholder name used inside section bodies.
	Key string `json:"key"`
	// Label is the human-readable name.
	Label string `json:"label"`
	// AutoFillable marks variables the BOM classifier can populate.
	AutoFillable bool `json:"auto_fillable"`
}

// Variables is the registry of every known template variable.
var Variables = []Variable{
	{Key: "NEW_CAMERA_TOTAL", Label: "New Camera Total", AutoFillable: true},
	{Key: "CAMERA_BRAND", Label: "Camera Brand", AutoFillable: true},
	{Key: "EXTERIOR_CAMERA_COUNT", Label: "Exterior Camera Count", AutoFillable: false},
	{Key: "INTERIOR_CAMERA_COUNT", Label: "Interior Camera Count", AutoFillable: false},
	{Key: "CAT6_COUNT", Label: "Cat6 Cable Count", AutoFillable: true},
	{Key: "CAT6_FOOTAGE", Label: "Cat6 Total Footage", AutoFillable: false},
	{Key: "RELOCATE_COUNT", Label: "Relocate Count", AutoFillable: false},
	{Key: "CONDUIT_FOOTAGE", Label: "Conduit Footage", AutoFillable: false},
	{Key: "PTP_COUNT", Label: "Point-to-Point Count", AutoFillable: true},
	{Key: "LICENSE_COUNT", Label: "License Count", AutoFillable: true},
	{Key: "POE_SWITCH_COUNT", Label: "PoE Switch Count", AutoFillable: true},
	{Key: "POE_INJECTOR_COUNT", Label: "PoE Injector Count", AutoFillable: true},
	{Key: "MOUNT_COUNT", Label: "Mount/Accessory Count", AutoFillable: true},
	{Key: "SERVER_TOTAL", Label: "Server/NVR Total", AutoFillable: true},
	{Key: "SERVER_BRAND", Label: "Server Brand", AutoFillable: true},
	{Key: "VMS_PLATFORM", Label: "VMS Platform", AutoFillable: true},
	{Key: "CAMERA_LICENSES", Label: "Camera Licenses", AutoFillable: true},
	{Key: "CAMERA_COUNT", Label: "Camera Count", AutoFillable: true},
	{Key: "RETENTION_DAYS", Label: "Retention Days", AutoFillable: false},
	{Key: "DOOR_TOTAL", Label: "Door Total", AutoFillable: false},
	{Key: "RIP_REPLACE_COUNT", Label: "Rip & Replace Count", AutoFillable: false},
	{Key: "NEW_DOOR_COUNT", Label: "New Door Count", AutoFillable: false},
	{Key: "COMPOSITE_COUNT", Label: "Composite Cable Count", AutoFillable: false},
	{Key: "COMPOSITE_FOOTAGE", Label: "Composite Footage", AutoFillable: false},
	{Key: "CONTROLLER_COUNT", Label: "Controller Count", AutoFillable: true},
	{Key: "CONTROLLER_BRAND", Label: "Controller Brand", AutoFillable: true},
	{Key: "INTERCOM_TOTAL", Label: "Intercom Total", AutoFillable: true},
	{Key: "INTERCOM_BRAND", Label: "Intercom Brand", AutoFillable: true},
	{Key: "LOCK_TOTAL", Label: "Lock Total", AutoFillable: true},
	{Key: "ELECTRIC_STRIKE_COUNT", Label: "Electric Strike Count", AutoFillable: true},
	{Key: "MAGLOCK_COUNT", Label: "Maglock Count", AutoFillable: true},
	{Key: "MOTORIZED_LATCH_COUNT", Label: "Motorized Latch Count", AutoFillable: true},
	{Key: "OTHER_LOCK_COUNT", Label: "Other Lock Count", AutoFillable: false},
	{Key: "POWER_TRANSFER_COUNT", Label: "Power Transfer Count", AutoFillable: true},
	{Key: "EXISTING_READER_COUNT", Label: "Existing Reader Count", AutoFillable: false},
	{Key: "NEW_READER_COUNT", Label: "New Reader Count", AutoFillable: true},
	{Key: "READER_BRAND", Label: "Reader Brand", AutoFillable: true},
	{Key: "DPS_COUNT", Label: "DPS Count", AutoFillable: true},
	{Key: "REX_COUNT", Label: "REX Count", AutoFillable: true},
	{Key: "PUSH_COUNTS", Label: "Push Button Count", AutoFillable: true},
	{Key: "POWER_SUPPLY_COUNT", Label: "Power Supply Count", AutoFillable: true},
	{Key: "PROGRAMMING_DETAILS", Label: "Programming Details", AutoFillable: false},
	{Key: "PROGRAMMING_CCTV_DETAILS", Label: "Programming CCTV Details", AutoFillable: false},
	{Key: "PROGRAMMING_AC_DETAILS", Label: "Programming AC Details", AutoFillable: false},
	{Key: "NVR_COUNT", Label: "NVR Count", AutoFillable: true},
}
