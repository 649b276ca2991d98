// Package sow holds the scope-of-work section catalog, the narrative
// text engine, and the BOM auto-fill classifiers.
package sow

// SectionTemplate is one parameterized block of SOW narrative text.
// Bodies contain {{VAR_NAME}} placeholders resolved at render time.
type SectionTemplate struct {
	// ID is the stable section identifier. The catalog is versioned and
	// append-only: ids and their variable names are referenced by
	// persisted per-project state and must never be renamed.
	ID string `json:"id"`
	// Title is the numbered section heading text.
	Title string `json:"title"`
	// Body is the template text, one clause per line.
	Body string `json:"body"`
}

// SectionTemplates is the built-in section catalog, in default order.
var SectionTemplates = []SectionTemplate{
	{
		ID:    "install_cameras",
		Title: "Install Cameras according to hardware schedule",
		Body: `Mount {{NEW_CAMERA_TOTAL}} new {{CAMERA_BRAND}} cameras, consisting of:
{{EXTERIOR_CAMERA_COUNT}} exterior cameras
{{INTERIOR_CAMERA_COUNT}} interior cameras
ALL Camera Mounting should be secure and level, according to manufacturer specs
Install approved junction boxes where required
Seal all exterior penetrations`,
	},
	{
		ID:    "provide_cabling",
		Title: "Provide Cat6 Cabling",
		Body: `Provide and install {{CAT6_COUNT}} new Cat6 data cables.
Indoor Cat6 (above-ceiling): Use space-rated cable (plenum where applicable)
Maintain min 2" separation from power lines unless an exception applies.
Supports: max 5 ft intervals, add within 12" of drops/terminations
Properly label each cable at each end
Approximate total cable length: {{CAT6_FOOTAGE}} ft.`,
	},
	{
		ID:    "relocate_cameras",
		Title: "Relocate Existing Cameras",
		Body:  `Relocate {{RELOCATE_COUNT}} existing cameras to new locations according to hardware schedule.`,
	},
	{
		ID:    "conduit_installation",
		Title: "Conduit Installation",
		Body: `Provide and install conduit to protect exposed cabling where required.
Use listed transitions and raintight/wet-location fittings/boxes
Keep pull/junction points accessible
Strap EMT within 3 ft of terminations and max 10 ft intervals
Strap PVC within 3 ft of terminations and max 3 ft intervals
Estimated conduit length: {{CONDUIT_FOOTAGE}} ft.`,
	},
	{
		ID:    "cable_termination",
		Title: "Cable Termination (Cat6)",
		Body: `Terminate {{CAT6_COUNT}} Cat6 cables at designated locations
Terminate on Category-rated patch panels and keystone jacks (IDC) using T568B unless otherwise specified
No field-crimp RJ45 on horizontal cable unless MPTL is explicitly approved and tested.
Maintain pair twists to within 0.5 in (13 mm) of the termination, strip jacket only as needed
Provide strain relief, and dress cabling neat without damage.
Make device/outdoor terminations inside rated enclosures with wet-location/raintight components.`,
	},
	{
		ID:    "testing_commissioning",
		Title: "Testing and Commissioning (CCTV)",
		Body: `Test all newly installed and/or relocated cables.
Verify all cameras power on
Set IP addresses of Cameras and equipment according to schema obtained from PoC
Verify operational status of all cameras.
Confirm live video stream
Confirm proper focus and framing`,
	},
	{
		ID:    "server_nvr",
		Title: "Server / NVR",
		Body: `Install {{SERVER_TOTAL}} new {{SERVER_BRAND}} Server/NVR
Install {{NVR_COUNT}} NVR/VMS server(s).
Mount hardware and connect to power/UPS.
Connect and configure network settings according to IP Address schema obtained from PoC
Install/configure {{VMS_PLATFORM}}
Setup User access configuration
Apply {{CAMERA_LICENSES}} Camera Licenses
Enroll up to {{CAMERA_COUNT}} cameras.
Configure Motion, object detection, AI tools etc.
Configure Recording profile
Configure retention for approximately {{RETENTION_DAYS}} days.
Test live view, recording, and playback.`,
	},
	{
		ID:    "wireless_ptp",
		Title: "Wireless Point-to-Point",
		Body: `Provide and install {{PTP_COUNT}} wireless point-to-point bridge(s).
Mount radios securely at designated locations with proper alignment and weatherproofing.
Configure and test wireless link(s) for connectivity and throughput.
Remove default settings, and logins
Provide updated settings to PoC`,
	},
	{
		ID:    "licenses",
		Title: "Licenses",
		Body: `Provide and apply {{LICENSE_COUNT}} software/hardware license(s) as specified in the BOM.
Verify license activation and proper system registration.`,
	},
	{
		ID:    "poe_switches",
		Title: "PoE Switches",
		Body: `Provide and install {{POE_SWITCH_COUNT}} PoE network switch(es).
Rack-mount or surface-mount switches as directed.
Connect and configure switch ports for all PoE-powered devices.
Verify power delivery and network connectivity on all ports.`,
	},
	{
		ID:    "poe_injectors",
		Title: "PoE Injectors",
		Body: `Provide and install {{POE_INJECTOR_COUNT}} PoE injector(s) where dedicated PoE switch ports are not available.
Mount injectors in a secure, accessible location.
Verify proper power delivery to connected devices.`,
	},
	{
		ID:    "mounts_accessories",
		Title: "Mounts & Accessories",
		Body: `Provide and install {{MOUNT_COUNT}} mounting accessory(ies), including but not limited to:
Wall-mount arms, corner brackets, pendant mounts, pole adapters, and junction boxes as specified in the Hardware Schedule.
All mounts shall be installed properly and securely per manufacturer specifications.`,
	},
	{
		ID:    "ac_install",
		Title: "Install Access Control",
		Body: `Install access control hardware on {{DOOR_TOTAL}} doors:
{{RIP_REPLACE_COUNT}} rip-and-replace
{{NEW_DOOR_COUNT}} new door(s)`,
	},
	{
		ID:    "ac_composite_cabling",
		Title: "Provide Composite Cabling",
		Body: `Provide and install {{COMPOSITE_COUNT}} composite/multi conductor cable run(s) (approx. {{COMPOSITE_FOOTAGE}} ft total)
Provide and run {{CAT6_COUNT}} Cat6 cable run(s) for intercom/network devices
Use proper cable supports and label both ends of all cabling
Maintain separation from high-voltage wiring`,
	},
	{
		ID:    "ac_controller",
		Title: "Controller Installation",
		Body: `Install {{CONTROLLER_COUNT}} new {{CONTROLLER_BRAND}} door controllers
Secure controllers in accordance with manufacturer installation guidelines.
Connect Controller(s) to Fire Alarm Panel (if Applicable)`,
	},
	{
		ID:    "ac_intercom",
		Title: "Intercom Installation",
		Body: `Install {{INTERCOM_TOTAL}} new {{INTERCOM_BRAND}} intercom device(s).
Mount intercom units secure and level.`,
	},
	{
		ID:    "ac_locking",
		Title: "Electric Locking Installation",
		Body: `Provide and install {{LOCK_TOTAL}} new locking hardware device(s), consisting of:
{{ELECTRIC_STRIKE_COUNT}} electric strike(s)
{{MAGLOCK_COUNT}} magnetic lock(s)
{{MOTORIZED_LATCH_COUNT}} electrified latch release exit device(s)
{{OTHER_LOCK_COUNT}} other electrified locking device(s)
Remove existing hardware where required.
Prep door/frame as necessary for proper fit and operation.
Install {{POWER_TRANSFER_COUNT}} devices (hinge/loop) where required.
Verify proper mechanical operation prior to energizing.
Test fail-safe / fail-secure functionality.
Verify proper door alignment and latch engagement/disengagement`,
	},
	{
		ID:    "ac_readers",
		Title: "Reader Installation",
		Body: `Remove {{EXISTING_READER_COUNT}} existing readers
Install {{NEW_READER_COUNT}} new {{READER_BRAND}} readers`,
	},
	{
		ID:    "ac_dps_rex",
		Title: "DPS, REX, Push Button Installation",
		Body: `Install {{DPS_COUNT}} Door Position Sensors
Install {{REX_COUNT}} request to exits
Install {{PUSH_COUNTS}} push to exit buttons`,
	},
	{
		ID:    "ac_power",
		Title: "Power & Batteries",
		Body: `Mount {{POWER_SUPPLY_COUNT}} power supplies
Install batteries in {{POWER_SUPPLY_COUNT}} power supplies and {{CONTROLLER_COUNT}} new controllers
Verify correct charging voltage and backup operation.`,
	},
	{
		ID:    "ac_termination",
		Title: "Cable Termination (Access Control)",
		Body: `Terminate {{COMPOSITE_COUNT}} composite cables and {{CAT6_COUNT}} Cat6 cables using approved termination hardware
Label all field wiring within enclosures for serviceability.
Confirm controller, lock, REX, DPS, and reader connections as applicable.`,
	},
	{
		ID:    "ac_testing",
		Title: "Testing & Commissioning (Access Control)",
		Body: `Test all newly installed cabling
Configure panel settings and network parameters
Confirm system communication and operational status
Ensure all devices are securely mounted
Verify proper reader mounting height
Verify proper locking hardware alignment
Verify lock/unlock operation at all {{DOOR_TOTAL}} doors
Verify reader credential functionality
Verify DPS and REX operation
Verify intercom communication
Verify proper ADA compliance where required
Confirm fire marshal free egress compliance`,
	},
	{
		ID:    "programming_cctv",
		Title: "Programming (CCTV)",
		Body: `Configure IP addresses for all cameras according to schema obtained from PoC
Update camera firmware to latest stable version
Configure motion detection zones and sensitivity
Configure AI/analytics features as specified
Set up recording profiles (continuous, motion, schedule)
Configure video stream settings (resolution, frame rate, bitrate)
Verify live view, recording, and playback functionality`,
	},
	{
		ID:    "programming_ac",
		Title: "Programming (Access Control)",
		Body: `Program access control panels and controllers
Enroll credentials and configure cardholder access levels
Configure door schedules and access groups
Program REX, DPS, and lock timing parameters
Configure intercom call stations and directory
Set up alarm monitoring and event notifications
Configure fire alarm integration and emergency unlock sequences
Verify all programmed functions at each door`,
	},
}

// SectionByID returns the catalog entry for id.
func SectionByID(id string) (SectionTemplate, bool) {
	for _, s := range SectionTemplates {
		if s.ID == id {
			return s, true
		}
	}
	return SectionTemplate{}, false
}

// DefaultSectionOrder returns the catalog ids in default order.
func DefaultSectionOrder() []string {
	ids := make([]string, len(SectionTemplates))
	for i, s := range SectionTemplates {
		ids[i] = s.ID
	}
	return ids
}
