package workflow

import (
	"errors"
	"fmt"
)

// BidScope distinguishes the two mutually exclusive scope variants a
// bid row can carry. The labels are the literal strings typed into the
// scope cell's search control.
type BidScope string

// Bid scopes
const (
	ScopeWithMaterial    BidScope = "Bid with material"
	ScopeWithoutMaterial BidScope = "Bid without material"
)

// BidStatus represents valid bid states
type BidStatus string

// Bid statuses
const (
	BidStatusDraft     BidStatus = "Draft"
	BidStatusSubmitted BidStatus = "Submitted"
	BidStatusAwarded   BidStatus = "Awarded"
)

// Domain errors
var (
	ErrInvalidBidScope      = errors.New("bid scope must be with or without material")
	ErrDuplicateBidScope    = errors.New("job already has a bid with this scope")
	ErrInvalidBidPrice      = errors.New("bid total price must be positive")
	ErrBidNotEditable       = errors.New("bid price can only be edited before submission")
	ErrBidNotSubmitted      = errors.New("only a submitted bid can be awarded")
	ErrBidAlreadyAwarded    = errors.New("a bid has already been awarded for this job")
	ErrVendorAlreadyInvited = errors.New("vendor is already invited to this bid")
	ErrNoAwardedBid         = errors.New("no bid has been awarded yet")
	ErrContractFinalized    = errors.New("contract is already finalized")
)

// VendorRef identifies a vendor invited to bid: either an existing
// organization looked up by name, or a brand-new registration.
type VendorRef struct {
	Name         string
	Registration *VendorRegistration
}

// VendorRegistration holds the fields for inviting a vendor that does
// not yet exist in the system.
type VendorRegistration struct {
	Organization string
	ContactName  string
	ContactEmail string
	Address      string
}

// ExistingVendor references a vendor already registered in the system.
func ExistingVendor(name string) VendorRef {
	return VendorRef{Name: name}
}

// NewVendor references a vendor registered as part of the invitation.
func NewVendor(reg VendorRegistration) VendorRef {
	return VendorRef{Name: reg.Organization, Registration: &reg}
}

// Bid is one scope-qualified bid row on a job.
type Bid struct {
	Scope      BidScope
	Status     BidStatus
	TotalPrice int64
	invited    map[string]VendorRef
}

func newBid(scope BidScope) (*Bid, error) {
	if scope != ScopeWithMaterial && scope != ScopeWithoutMaterial {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBidScope, scope)
	}
	return &Bid{
		Scope:   scope,
		Status:  BidStatusDraft,
		invited: make(map[string]VendorRef),
	}, nil
}

// Invite adds a vendor to the bid's invitation set. A vendor is invited
// into exactly one bid's set at a time in this workflow.
func (b *Bid) Invite(vendor VendorRef) error {
	if _, ok := b.invited[vendor.Name]; ok {
		return fmt.Errorf("%w: %s", ErrVendorAlreadyInvited, vendor.Name)
	}
	b.invited[vendor.Name] = vendor
	return nil
}

// Invited reports whether the named vendor is in the invitation set.
func (b *Bid) Invited(name string) bool {
	_, ok := b.invited[name]
	return ok
}

// Vendors returns the number of invited vendors.
func (b *Bid) Vendors() int {
	return len(b.invited)
}

// SetTotalPrice edits the bid's total. Editing is only legal before
// submission; the "edit on behalf of vendor" flow re-opens a draft.
func (b *Bid) SetTotalPrice(price int64) error {
	if b.Status != BidStatusDraft {
		return fmt.Errorf("%w: status is %s", ErrBidNotEditable, b.Status)
	}
	if price <= 0 {
		return ErrInvalidBidPrice
	}
	b.TotalPrice = price
	return nil
}

// Submit moves the bid from draft to submitted.
func (b *Bid) Submit() error {
	if b.Status != BidStatusDraft {
		return fmt.Errorf("cannot submit bid with status %s", b.Status)
	}
	if b.TotalPrice <= 0 {
		return ErrInvalidBidPrice
	}
	b.Status = BidStatusSubmitted
	return nil
}

// Reopen puts a submitted bid back into draft for price editing, which
// is what accepting an invitation does for the vendor identity.
func (b *Bid) Reopen() error {
	if b.Status == BidStatusAwarded {
		return fmt.Errorf("cannot reopen bid with status %s", b.Status)
	}
	b.Status = BidStatusDraft
	return nil
}

// BidSet is the set of bids on one job, plus the award and contract
// state that follows from them.
type BidSet struct {
	bids      []*Bid
	awarded   *Bid
	finalized bool
}

// NewBidSet returns an empty bid set for a job.
func NewBidSet() *BidSet {
	return &BidSet{}
}

// Add creates a bid row with the given scope. The two scope variants
// are mutually exclusive rows of the same job, so each scope may appear
// at most once.
func (s *BidSet) Add(scope BidScope) (*Bid, error) {
	for _, existing := range s.bids {
		if existing.Scope == scope {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateBidScope, scope)
		}
	}

	bid, err := newBid(scope)
	if err != nil {
		return nil, err
	}
	s.bids = append(s.bids, bid)
	return bid, nil
}

// Bids returns the bid rows in creation order.
func (s *BidSet) Bids() []*Bid {
	return s.bids
}

// Award marks exactly one submitted bid as awarded. The transition is
// irreversible: no unaward path exists in this workflow.
func (s *BidSet) Award(bid *Bid) error {
	if s.awarded != nil {
		return ErrBidAlreadyAwarded
	}
	if bid.Status != BidStatusSubmitted {
		return fmt.Errorf("%w: status is %s", ErrBidNotSubmitted, bid.Status)
	}

	bid.Status = BidStatusAwarded
	s.awarded = bid
	return nil
}

// Awarded returns the awarded bid, or nil if none.
func (s *BidSet) Awarded() *Bid {
	return s.awarded
}

// FinalizeContract finalizes the awarded bid's contract. The first call
// succeeds; after that the contract is immutable and re-finalizing is
// an error, mirroring the disabled "Bulk Update Status" control.
func (s *BidSet) FinalizeContract() error {
	if s.awarded == nil {
		return ErrNoAwardedBid
	}
	if s.finalized {
		return ErrContractFinalized
	}
	s.finalized = true
	return nil
}

// ContractFinalized reports whether the contract has been finalized.
func (s *BidSet) ContractFinalized() bool {
	return s.finalized
}

// BulkUpdateEnabled mirrors the UI's "Bulk Update Status" control,
// which is disabled once the contract is finalized.
func (s *BidSet) BulkUpdateEnabled() bool {
	return !s.finalized
}
