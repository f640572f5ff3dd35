package models

// NVRDevice is a network video recorder that hosts camera streams.
type NVRDevice struct {
	ID            int64  `json:"id"`
	NVRName       string `json:"nvr_name"`
	IPAddress     string `json:"ip_address,omitempty"`
	ChannelNumber string `json:"channel_number,omitempty"`
	SwitchPort    string `json:"switch_port,omitempty"`
}

// TableName returns the name of the database table
// associated with the NVRDevice model.
func (n NVRDevice) TableName() string {
	return "nvr_devices"
}
