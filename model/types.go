package model

// EncodeRequest names an address by its components.
//
// Type is a bech32 prefix ("scope", "session", "record", "contractspec",
// "scopespec", "recspec"). SecondaryUUID is required for sessions and Name for
// records and record specifications; both are ignored otherwise.
type EncodeRequest struct {
	Type          string `json:"type"`
	PrimaryUUID   string `json:"primaryUUID"`
	SecondaryUUID string `json:"secondaryUUID,omitempty"`
	Name          string `json:"name,omitempty"`
}

// AddressDetails is the JSON view of a decoded address.
type AddressDetails struct {
	Address       string `json:"address"`
	Type          string `json:"type"`
	Prefix        string `json:"prefix"`
	Key           uint8  `json:"key"`
	Hex           string `json:"hex"`
	PrimaryUUID   string `json:"primaryUUID"`
	SecondaryUUID string `json:"secondaryUUID,omitempty"`
	NameHashHex   string `json:"nameHashHex,omitempty"`
	ParentAddress string `json:"parentAddress,omitempty"`
}

// DocumentAddress binds a content identifier to the address derived from it.
type DocumentAddress struct {
	CID     string         `json:"cid"`
	Details AddressDetails `json:"details"`
}
