package model

import (
	"encoding/hex"
	"strings"

	"github.com/ipfs/go-cid"

	"xdao.co/metaddr/metadata"
)

// Params validates req and converts it into constructor parameters.
func (req EncodeRequest) Params() (metadata.Params, error) {
	typ, ok := metadata.TypeForPrefix(strings.ToLower(strings.TrimSpace(req.Type)))
	if !ok {
		return metadata.Params{}, NewError(ErrInvalidRequest, "unknown address type: "+req.Type)
	}
	p := metadata.Params{Type: typ, Name: req.Name}

	var err error
	if p.Primary, err = metadata.ParseUUID(req.PrimaryUUID); err != nil {
		return metadata.Params{}, err
	}
	switch typ {
	case metadata.TypeSession:
		if req.SecondaryUUID == "" {
			return metadata.Params{}, NewError(ErrInvalidRequest, "session addresses require a secondary uuid")
		}
		if p.Secondary, err = metadata.ParseUUID(req.SecondaryUUID); err != nil {
			return metadata.Params{}, err
		}
	case metadata.TypeRecord, metadata.TypeRecordSpecification:
		if req.Name == "" {
			return metadata.Params{}, NewError(ErrInvalidRequest, typ.String()+" addresses require a name")
		}
	}
	return p, nil
}

// Encode builds the address described by req.
func Encode(req EncodeRequest) (metadata.Address, error) {
	p, err := req.Params()
	if err != nil {
		return metadata.Address{}, err
	}
	return metadata.New(p)
}

// Describe projects addr onto AddressDetails.
func Describe(addr metadata.Address) AddressDetails {
	d := AddressDetails{
		Address: addr.String(),
		Type:    addr.Type().String(),
		Prefix:  addr.Prefix(),
		Key:     addr.Key(),
		Hex:     addr.Hex(),
	}
	if addr.Empty() {
		return d
	}
	d.PrimaryUUID = addr.PrimaryUUID().String()

	if su, err := addr.SecondaryUUID(); err == nil {
		d.SecondaryUUID = su.String()
	}
	if h, err := addr.NameHash(); err == nil {
		d.NameHashHex = hex.EncodeToString(h)
	}
	switch addr.Type() {
	case metadata.TypeSession, metadata.TypeRecord:
		if parent, err := addr.ScopeAddress(); err == nil {
			d.ParentAddress = parent.String()
		}
	case metadata.TypeRecordSpecification:
		if parent, err := addr.ContractSpecAddress(); err == nil {
			d.ParentAddress = parent.String()
		}
	}
	return d
}

// DescribeDocument derives the typ address of the document identified by id.
func DescribeDocument(typ metadata.Type, id cid.Cid) (DocumentAddress, error) {
	addr, err := metadata.FromCID(typ, id)
	if err != nil {
		return DocumentAddress{}, err
	}
	return DocumentAddress{CID: id.String(), Details: Describe(addr)}, nil
}
