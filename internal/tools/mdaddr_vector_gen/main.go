package main

import (
	"encoding/json"
	"fmt"
	"os"

	"xdao.co/metaddr/model"
)

// Regenerates testdata/conformance/metadata/addresses.json:
//
//	go run ./internal/tools/mdaddr_vector_gen > testdata/conformance/metadata/addresses.json

type vector struct {
	Name          string `json:"name"`
	Type          string `json:"type"`
	PrimaryUUID   string `json:"primaryUUID"`
	SecondaryUUID string `json:"secondaryUUID,omitempty"`
	RecordName    string `json:"recordName,omitempty"`
	Bech32        string `json:"bech32"`
	Hex           string `json:"hex"`
}

type vectorFile struct {
	Version int      `json:"version"`
	Vectors []vector `json:"vectors"`
}

const (
	scopeUUID     = "91978ba2-5f35-459a-86a7-feca1b0512e0"
	sessionUUID   = "5803f8bc-6067-4eb5-951f-2121671c2ec0"
	scopeSpecUUID = "dc83ea70-eacd-40fe-9adf-1cf6148bf8a2"
	contractUUID  = "def6bc0a-c9dd-4874-948f-5206e6060a84"
	upperUUID     = "97263339-CFAA-41D9-809E-82CD78C84F02"
	nilUUID       = "00000000-0000-0000-0000-000000000000"
)

var inputs = []struct {
	name string
	req  model.EncodeRequest
}{
	{"scope", model.EncodeRequest{Type: "scope", PrimaryUUID: scopeUUID}},
	{"session", model.EncodeRequest{Type: "session", PrimaryUUID: scopeUUID, SecondaryUUID: sessionUUID}},
	{"record", model.EncodeRequest{Type: "record", PrimaryUUID: scopeUUID, Name: "recordname"}},
	{"scope specification", model.EncodeRequest{Type: "scopespec", PrimaryUUID: scopeSpecUUID}},
	{"contract specification", model.EncodeRequest{Type: "contractspec", PrimaryUUID: contractUUID}},
	{"record specification", model.EncodeRequest{Type: "recspec", PrimaryUUID: contractUUID, Name: "recordname"}},
	{"scope uppercase uuid", model.EncodeRequest{Type: "scope", PrimaryUUID: upperUUID}},
	{"contract specification uppercase uuid", model.EncodeRequest{Type: "contractspec", PrimaryUUID: upperUUID}},
	{"record name normalized", model.EncodeRequest{Type: "record", PrimaryUUID: scopeUUID, Name: "  RecordName \t"}},
	{"session nil scope", model.EncodeRequest{Type: "session", PrimaryUUID: nilUUID, SecondaryUUID: sessionUUID}},
	{"record specification unicode name", model.EncodeRequest{Type: "recspec", PrimaryUUID: "97263339-cfaa-41d9-809e-82cd78c84f02", Name: "Größe"}},
}

func main() {
	out := vectorFile{Version: 1}
	for _, in := range inputs {
		addr, err := model.Encode(in.req)
		if err != nil {
			panic(fmt.Sprintf("%s: %v", in.name, err))
		}
		out.Vectors = append(out.Vectors, vector{
			Name:          in.name,
			Type:          in.req.Type,
			PrimaryUUID:   in.req.PrimaryUUID,
			SecondaryUUID: in.req.SecondaryUUID,
			RecordName:    in.req.Name,
			Bech32:        addr.String(),
			Hex:           addr.Hex(),
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}
