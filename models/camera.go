package models

// Camera is the central inventory entity: a physical surveillance camera,
// optionally attached to a location and an NVR host device.
//
// Status tracks the asset lifecycle ("Active", "Inactive", "Decommissioned"),
// CameraStatus tracks the live operational state ("Online", "Offline").
type Camera struct {
	ID              int64  `json:"id"`
	SerialNo        string `json:"serial_no"`
	ItemDescription string `json:"item_description,omitempty"`
	ModelNo         string `json:"model_no,omitempty"`
	Brand           string `json:"brand,omitempty"`
	RTATag          string `json:"rta_tag,omitempty"`
	CameraName      string `json:"camera_name,omitempty"`
	IPAddress       string `json:"ip_address,omitempty"`
	MACAddress      string `json:"mac_address,omitempty"`
	FirmwareVersion string `json:"firmware_version,omitempty"`
	Protocol        string `json:"protocol,omitempty"`
	SDCard          bool   `json:"sd_card"`
	SDCapacity      *int64 `json:"sd_capacity,omitempty"`
	Status          string `json:"status"`
	CameraStatus    string `json:"camera_status"`
	Details         string `json:"details,omitempty"`
	Comments        string `json:"comments,omitempty"`
	IsAsset         bool   `json:"is_asset"`

	// LocationID ties the camera to a site; nil means unplaced. Access
	// control for mutations is evaluated against this value.
	LocationID *int64 `json:"location_id,omitempty"`

	// NVRID ties the camera to its recording host; nil means unassigned.
	NVRID *int64 `json:"nvr_id,omitempty"`
}

// TableName returns the name of the database table
// associated with the Camera model.
func (c Camera) TableName() string {
	return "cameras"
}
