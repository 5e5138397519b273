package spc

import "encoding/json"

// PanelInfo is the controller metadata reported by the spc/panel resource.
type PanelInfo struct {
	SerialNumber string `json:"sn"`
	Model        string `json:"model"`
	Version      string `json:"version"`
}

// AreaRecord is one area as reported by the gateway.
type AreaRecord struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Mode          string `json:"mode"`
	LastSetUser   string `json:"last_set_user_name"`
	LastUnsetUser string `json:"last_unset_user_name"`
}

// ZoneRecord is one zone as reported by the gateway.
type ZoneRecord struct {
	ID     string `json:"id"`
	Name   string `json:"zone_name"`
	Area   string `json:"area"`
	Input  string `json:"input"`
	Type   string `json:"type"`
	Status string `json:"status"`
}

// zoneRecords tolerates the gateway returning either a single zone object or
// a list of them for the same resource.
type zoneRecords []ZoneRecord

func (z *zoneRecords) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '[' {
		var list []ZoneRecord
		if err := json.Unmarshal(b, &list); err != nil {
			return err
		}
		*z = list
		return nil
	}
	var one ZoneRecord
	if err := json.Unmarshal(b, &one); err != nil {
		return err
	}
	*z = zoneRecords{one}
	return nil
}

// APIData is the data section of a gateway reply. Only the fields matching
// the requested resource are populated.
type APIData struct {
	Panel *PanelInfo   `json:"panel"`
	Areas []AreaRecord `json:"area"`
	Zones zoneRecords  `json:"zone"`
}

type apiEnvelope struct {
	Status string   `json:"status"`
	Data   *APIData `json:"data"`
}

// PushEvent is a decoded message from the gateway's push channel.
type PushEvent struct {
	Data struct {
		Sia SIAEvent `json:"sia"`
	} `json:"data"`
}

// SIAEvent is the SIA block carried by a push message.
type SIAEvent struct {
	Address     string `json:"sia_address"`
	Code        string `json:"sia_code"`
	Description string `json:"description"`
}
