package metadata

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"xdao.co/metaddr/bech32"
)

func TestFromBech32_ErrorTaxonomy_WrapsBech32(t *testing.T) {
	_, err := FromBech32("li1dgmt3")
	require.Error(t, err)

	var e *Error
	require.True(t, errors.As(err, &e), "expected structured *metadata.Error, got %T", err)
	assert.Equal(t, KindFormat, e.Kind)
	assert.Equal(t, "MDADDR-FMT-001", e.RuleID)

	// The bech32 cause stays reachable.
	assert.True(t, bech32.IsKind(err, bech32.KindFormat))
	assert.Equal(t, "BECH32-DATA-001", bech32.RuleID(err))
}

func TestError_WrappedByCaller(t *testing.T) {
	_, err := FromBytes([]byte{0x0a})
	wrapped := fmt.Errorf("load scope: %w", err)
	assert.True(t, IsKind(wrapped, KindInvalidArgument))
	assert.Equal(t, "MDADDR-KEY-001", RuleID(wrapped))
	assert.Equal(t, "", RuleID(errors.New("plain")))
	assert.False(t, IsKind(nil, KindFormat))
}

func TestError_NilSafe(t *testing.T) {
	var e *Error
	assert.Equal(t, "<nil>", e.Error())
	assert.Nil(t, e.Unwrap())
	assert.Equal(t, codes.InvalidArgument, e.GRPCStatus().Code())
}

func TestError_GRPCStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		kind   Kind
		ruleID string
	}{
		{name: "format", err: func() error { _, err := FromBech32("x"); return err }(), kind: KindFormat, ruleID: "MDADDR-FMT-001"},
		{name: "unknown key", err: func() error { _, err := FromBytes([]byte{0x06, 0x00}); return err }(), kind: KindInvalidArgument, ruleID: "MDADDR-KEY-001"},
		{name: "blank name", err: func() error { _, err := ForRecord(scopeUUID, " "); return err }(), kind: KindInvalidArgument, ruleID: "MDADDR-NAME-001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.err)
			st, ok := status.FromError(fmt.Errorf("rpc: %w", tt.err))
			require.True(t, ok)
			assert.Equal(t, codes.InvalidArgument, st.Code())
			assert.Contains(t, st.Message(), tt.err.Error())

			var info *errdetails.ErrorInfo
			for _, d := range st.Details() {
				if v, ok := d.(*errdetails.ErrorInfo); ok {
					info = v
				}
			}
			require.NotNil(t, info)
			assert.Equal(t, tt.ruleID, info.GetReason())
			assert.Equal(t, ErrorDomain, info.GetDomain())
			assert.Equal(t, string(tt.kind), info.GetMetadata()["kind"])
		})
	}
}

func TestValidateRules_Order(t *testing.T) {
	rules := LayoutRules()
	require.Len(t, rules, 3)
	assert.Equal(t, "MDADDR-LEN-001", rules[0].ID)
	assert.Equal(t, "MDADDR-KEY-001", rules[1].ID)
	assert.Equal(t, "MDADDR-LEN-002", rules[2].ID)

	for _, a := range allKinds(t) {
		assert.NoError(t, ValidateRules(a.Bytes(), rules))
		assert.Empty(t, ValidateRulesAll(a.Bytes(), rules))
	}
}

func TestValidateRulesAll_CollectsInOrder(t *testing.T) {
	extra := Rule{ID: "TEST-ODD", Apply: func(bz []byte) error {
		if len(bz)%2 == 1 {
			return newError(KindInvalidArgument, "TEST-ODD", "odd length")
		}
		return nil
	}}
	rules := append(LayoutRules(), extra)

	errs := ValidateRulesAll([]byte{0x00, 0x01, 0x02}, rules)
	require.Len(t, errs, 2)
	assert.Equal(t, "MDADDR-LEN-002", RuleID(errs[0]))
	assert.Equal(t, "TEST-ODD", RuleID(errs[1]))

	assert.Equal(t, "MDADDR-LEN-002", RuleID(ValidateRules([]byte{0x00, 0x01, 0x02}, rules)))
}

func TestValidateRules_NilApply(t *testing.T) {
	err := ValidateRules([]byte{0x00}, []Rule{{ID: "EMPTY"}})
	assert.Equal(t, "MDADDR-INTERNAL-001", RuleID(err))
}

func TestVerifyFormat(t *testing.T) {
	for _, a := range allKinds(t) {
		typ, err := VerifyFormat(a.Bytes())
		require.NoError(t, err)
		assert.Equal(t, a.Type(), typ)
	}
	typ, err := VerifyFormat([]byte{0xff})
	require.Error(t, err)
	assert.Equal(t, TypeUnknown, typ)
}
