package nft

import (
	"testing"

	"github.com/iov-one/nftoken"
	"github.com/iov-one/nftoken/errors"
	"github.com/iov-one/nftoken/tokentest"
)

func TestValidateMintMsg(t *testing.T) {
	addr := tokentest.NewCondition().Address()

	cases := map[string]struct {
		msg     nftoken.Msg
		wantErr *errors.Error
	}{
		"valid": {
			msg: &MintMsg{Recipient: addr, Amount: 5},
		},
		"missing recipient": {
			msg:     &MintMsg{Amount: 5},
			wantErr: errors.ErrInput,
		},
		"zero amount": {
			msg:     &MintMsg{Recipient: addr, Amount: 0},
			wantErr: errors.ErrAmount,
		},
		"negative amount": {
			msg:     &MintMsg{Recipient: addr, Amount: -4},
			wantErr: errors.ErrAmount,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.msg.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected validation error: %+v", err)
			}
		})
	}
}

func TestValidateTransferMsg(t *testing.T) {
	addr := tokentest.NewCondition().Address()

	cases := map[string]struct {
		msg     nftoken.Msg
		wantErr *errors.Error
	}{
		"valid transfer": {
			msg: &TransferMsg{Destination: addr, TokenId: 1},
		},
		"transfer without destination": {
			msg:     &TransferMsg{TokenId: 1},
			wantErr: errors.ErrInput,
		},
		"transfer without token id": {
			msg:     &TransferMsg{Destination: addr},
			wantErr: errors.ErrInput,
		},
		"valid delegated transfer": {
			msg: &DelegateTransferMsg{Destination: addr, TokenId: 1},
		},
		"delegated transfer without token id": {
			msg:     &DelegateTransferMsg{Destination: addr},
			wantErr: errors.ErrInput,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.msg.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected validation error: %+v", err)
			}
		})
	}
}

func TestValidateUpdateApprovalMsg(t *testing.T) {
	addr := tokentest.NewCondition().Address()

	cases := map[string]struct {
		msg     nftoken.Msg
		wantErr *errors.Error
	}{
		"valid grant": {
			msg: &UpdateApprovalMsg{Delegate: addr, TokenId: 1, Approved: true},
		},
		"valid revoke": {
			msg: &UpdateApprovalMsg{Delegate: addr, TokenId: 1, Approved: false},
		},
		"missing delegate": {
			msg:     &UpdateApprovalMsg{TokenId: 1, Approved: true},
			wantErr: errors.ErrInput,
		},
		"missing token id": {
			msg:     &UpdateApprovalMsg{Delegate: addr, Approved: true},
			wantErr: errors.ErrInput,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.msg.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected validation error: %+v", err)
			}
		})
	}
}
