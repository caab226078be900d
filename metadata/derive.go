package metadata

import "github.com/google/uuid"

// ScopeAddress returns the scope that a scope, session or record address
// belongs to.
func (a Address) ScopeAddress() (Address, error) {
	u, err := a.ScopeUUID()
	if err != nil {
		return Address{}, err
	}
	return ForScope(u), nil
}

// SessionAddress returns the session with the given UUID in a's scope.
func (a Address) SessionAddress(session uuid.UUID) (Address, error) {
	u, err := a.ScopeUUID()
	if err != nil {
		return Address{}, err
	}
	return ForSession(u, session), nil
}

// RecordAddress returns the named record in a's scope.
func (a Address) RecordAddress(name string) (Address, error) {
	u, err := a.ScopeUUID()
	if err != nil {
		return Address{}, err
	}
	return ForRecord(u, name)
}

// ContractSpecAddress returns the contract specification that a contract
// specification or record specification address belongs to.
func (a Address) ContractSpecAddress() (Address, error) {
	u, err := a.ContractSpecUUID()
	if err != nil {
		return Address{}, err
	}
	return ForContractSpecification(u), nil
}

// RecordSpecAddress returns the named record specification in a's contract
// specification.
func (a Address) RecordSpecAddress(name string) (Address, error) {
	u, err := a.ContractSpecUUID()
	if err != nil {
		return Address{}, err
	}
	return ForRecordSpecification(u, name)
}

// ScopeSessionIteratorPrefix returns the store prefix covering every session
// in a's scope. The empty address yields the prefix of all sessions.
func (a Address) ScopeSessionIteratorPrefix() ([]byte, error) {
	return a.iteratorPrefix(KeySession, a.ScopeUUID)
}

// ScopeRecordIteratorPrefix returns the store prefix covering every record in
// a's scope. The empty address yields the prefix of all records.
func (a Address) ScopeRecordIteratorPrefix() ([]byte, error) {
	return a.iteratorPrefix(KeyRecord, a.ScopeUUID)
}

// ContractSpecRecordSpecIteratorPrefix returns the store prefix covering
// every record specification in a's contract specification. The empty
// address yields the prefix of all record specifications.
func (a Address) ContractSpecRecordSpecIteratorPrefix() ([]byte, error) {
	return a.iteratorPrefix(KeyRecordSpecification, a.ContractSpecUUID)
}

func (a Address) iteratorPrefix(key byte, parent func() (uuid.UUID, error)) ([]byte, error) {
	if a.Empty() {
		return []byte{key}, nil
	}
	u, err := parent()
	if err != nil {
		return nil, err
	}
	return append([]byte{key}, u[:]...), nil
}
