package service

import (
	"context"
	"time"

	"github.com/zidepeople/runevents-api/internal/domain"
	"github.com/zidepeople/runevents-api/internal/paystack"
	"github.com/zidepeople/runevents-api/internal/repository"
)

type fakeUserRepo struct {
	users      map[uint]domain.User
	byEmail    map[string]domain.User
	createErr  error
	lastCreate domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:   map[uint]domain.User{},
		byEmail: map[string]domain.User{},
	}
}

func (f *fakeUserRepo) add(user domain.User) {
	f.users[user.ID] = user
	f.byEmail[user.Email] = user
}

func (f *fakeUserRepo) Create(_ context.Context, user domain.User) (domain.User, error) {
	if f.createErr != nil {
		return domain.User{}, f.createErr
	}
	user.ID = uint(len(f.users) + 1)
	f.lastCreate = user
	f.add(user)

	return user, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uint) (domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}

	return user, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}

	return user, nil
}

func (f *fakeUserRepo) Patch(_ context.Context, id uint, patch domain.UserPatch) (domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Password != nil {
		user.Password = *patch.Password
	}
	f.add(user)

	return user, nil
}

type fakeVendorRepo struct {
	vendors    map[uint]domain.Vendor
	byEmail    map[string]domain.Vendor
	lastCreate domain.Vendor
	created    int
}

func newFakeVendorRepo() *fakeVendorRepo {
	return &fakeVendorRepo{
		vendors: map[uint]domain.Vendor{},
		byEmail: map[string]domain.Vendor{},
	}
}

func (f *fakeVendorRepo) add(vendor domain.Vendor) {
	f.vendors[vendor.ID] = vendor
	f.byEmail[vendor.Email] = vendor
}

func (f *fakeVendorRepo) Create(_ context.Context, vendor domain.Vendor) (domain.Vendor, error) {
	vendor.ID = uint(len(f.vendors) + 1)
	f.lastCreate = vendor
	f.created++
	f.add(vendor)

	return vendor, nil
}

func (f *fakeVendorRepo) FindByID(_ context.Context, id uint) (domain.Vendor, error) {
	vendor, ok := f.vendors[id]
	if !ok {
		return domain.Vendor{}, repository.ErrVendorNotFound
	}

	return vendor, nil
}

func (f *fakeVendorRepo) FindByEmail(_ context.Context, email string) (domain.Vendor, error) {
	vendor, ok := f.byEmail[email]
	if !ok {
		return domain.Vendor{}, repository.ErrVendorNotFound
	}

	return vendor, nil
}

func (f *fakeVendorRepo) Patch(_ context.Context, id uint, patch domain.VendorPatch) (domain.Vendor, error) {
	vendor, ok := f.vendors[id]
	if !ok {
		return domain.Vendor{}, repository.ErrVendorNotFound
	}
	if patch.BusinessName != nil {
		vendor.BusinessName = *patch.BusinessName
	}
	f.add(vendor)

	return vendor, nil
}

func (f *fakeVendorRepo) Recommend(_ context.Context, _ string, _ int, _ domain.PackageTier, _ []string) ([]domain.Vendor, error) {
	out := make([]domain.Vendor, 0, len(f.vendors))
	for _, vendor := range f.vendors {
		out = append(out, vendor)
	}

	return out, nil
}

type fakeEventRepo struct {
	events  map[uint]domain.Event
	patched map[uint]domain.EventPatch
	deleted []uint
	delErr  error
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{
		events:  map[uint]domain.Event{},
		patched: map[uint]domain.EventPatch{},
	}
}

func (f *fakeEventRepo) Create(_ context.Context, event domain.Event) (domain.Event, error) {
	event.ID = uint(len(f.events) + 1)
	f.events[event.ID] = event

	return event, nil
}

func (f *fakeEventRepo) FindByID(_ context.Context, id uint) (domain.Event, error) {
	event, ok := f.events[id]
	if !ok {
		return domain.Event{}, repository.ErrEventNotFound
	}

	return event, nil
}

func (f *fakeEventRepo) FindAllPublic(_ context.Context) ([]domain.Event, error) {
	var out []domain.Event
	for _, event := range f.events {
		if event.IsPublic() {
			out = append(out, event)
		}
	}

	return out, nil
}

func (f *fakeEventRepo) FindByOrganizer(_ context.Context, organizerID uint) ([]domain.Event, error) {
	var out []domain.Event
	for _, event := range f.events {
		if event.OrganizerID == organizerID {
			out = append(out, event)
		}
	}

	return out, nil
}

func (f *fakeEventRepo) Patch(_ context.Context, id uint, patch domain.EventPatch) (domain.Event, error) {
	event, ok := f.events[id]
	if !ok {
		return domain.Event{}, repository.ErrEventNotFound
	}
	f.patched[id] = patch
	if patch.Name != nil {
		event.Name = *patch.Name
	}
	f.events[id] = event

	return event, nil
}

func (f *fakeEventRepo) Delete(_ context.Context, id uint) error {
	if f.delErr != nil {
		return f.delErr
	}
	f.deleted = append(f.deleted, id)
	delete(f.events, id)

	return nil
}

type participationKey struct {
	eventID  uint
	vendorID uint
}

type fakeParticipationRepo struct {
	rows map[participationKey]domain.VendorParticipation
}

func newFakeParticipationRepo() *fakeParticipationRepo {
	return &fakeParticipationRepo{
		rows: map[participationKey]domain.VendorParticipation{},
	}
}

func (f *fakeParticipationRepo) Create(_ context.Context, p domain.VendorParticipation) (domain.VendorParticipation, error) {
	key := participationKey{p.EventID, p.VendorID}
	if _, exists := f.rows[key]; exists {
		return domain.VendorParticipation{}, repository.ErrParticipationExists
	}
	p.Status = domain.ResponsePending
	f.rows[key] = p

	return p, nil
}

func (f *fakeParticipationRepo) Respond(_ context.Context, eventID, vendorID uint, accepted bool) (domain.VendorParticipation, error) {
	key := participationKey{eventID, vendorID}
	p, ok := f.rows[key]
	if !ok {
		return domain.VendorParticipation{}, repository.ErrParticipationNotFound
	}
	if p.Status.Responded() {
		return domain.VendorParticipation{}, repository.ErrAlreadyResponded
	}
	if accepted {
		p.Status = domain.ResponseAccepted
	} else {
		p.Status = domain.ResponseDeclined
	}
	f.rows[key] = p

	return p, nil
}

func (f *fakeParticipationRepo) ListByEvent(_ context.Context, eventID uint) ([]domain.ParticipationStatus, error) {
	var out []domain.ParticipationStatus
	for key, p := range f.rows {
		if key.eventID == eventID {
			out = append(out, domain.ParticipationStatus{
				VendorID: p.VendorID,
				Service:  p.Service,
				Price:    p.Price,
				Status:   p.Status,
			})
		}
	}

	return out, nil
}

func (f *fakeParticipationRepo) ListPendingByVendor(_ context.Context, vendorID uint) ([]domain.PendingRequest, error) {
	var out []domain.PendingRequest
	for key, p := range f.rows {
		if key.vendorID == vendorID && p.Status == domain.ResponsePending {
			out = append(out, domain.PendingRequest{
				EventID: p.EventID,
				Service: p.Service,
				Price:   p.Price,
			})
		}
	}

	return out, nil
}

type inviteeKey struct {
	eventID uint
	email   string
}

type fakeInvitationRepo struct {
	invitees      map[inviteeKey]domain.Invitee
	tickets       []domain.Ticket
	collaborators map[participationKey]domain.Collaborator
}

func newFakeInvitationRepo() *fakeInvitationRepo {
	return &fakeInvitationRepo{
		invitees:      map[inviteeKey]domain.Invitee{},
		collaborators: map[participationKey]domain.Collaborator{},
	}
}

func (f *fakeInvitationRepo) CreateInvitee(_ context.Context, invitee domain.Invitee, ticket *domain.Ticket) (domain.Invitee, error) {
	key := inviteeKey{invitee.EventID, invitee.Email}
	if _, exists := f.invitees[key]; exists {
		return domain.Invitee{}, repository.ErrInviteeExists
	}
	invitee.ID = uint(len(f.invitees) + 1)
	invitee.Status = domain.ResponsePending
	f.invitees[key] = invitee
	if ticket != nil {
		f.tickets = append(f.tickets, *ticket)
	}

	return invitee, nil
}

func (f *fakeInvitationRepo) RespondInvitee(_ context.Context, eventID uint, email string, accepted bool) (domain.Invitee, bool, error) {
	key := inviteeKey{eventID, email}
	invitee, ok := f.invitees[key]
	if !ok {
		return domain.Invitee{}, false, repository.ErrInviteeNotFound
	}
	if invitee.Status.Responded() {
		return invitee, true, nil
	}
	if accepted {
		invitee.Status = domain.ResponseAccepted
	} else {
		invitee.Status = domain.ResponseDeclined
	}
	f.invitees[key] = invitee

	return invitee, false, nil
}

func (f *fakeInvitationRepo) ListInviteesByEvent(_ context.Context, eventID uint) ([]domain.Invitee, error) {
	var out []domain.Invitee
	for key, invitee := range f.invitees {
		if key.eventID == eventID {
			out = append(out, invitee)
		}
	}

	return out, nil
}

func (f *fakeInvitationRepo) CreateCollaborator(_ context.Context, c domain.Collaborator) (domain.Collaborator, error) {
	key := participationKey{c.EventID, c.UserID}
	if _, exists := f.collaborators[key]; exists {
		return domain.Collaborator{}, repository.ErrCollaboratorExists
	}
	c.ID = uint(len(f.collaborators) + 1)
	f.collaborators[key] = c

	return c, nil
}

func (f *fakeInvitationRepo) RespondCollaboration(_ context.Context, eventID, userID uint, accepted bool) (domain.Collaborator, error) {
	key := participationKey{eventID, userID}
	c, ok := f.collaborators[key]
	if !ok {
		return domain.Collaborator{}, repository.ErrCollaboratorNotFound
	}
	if c.RespondedAt != nil {
		return domain.Collaborator{}, repository.ErrAlreadyResponded
	}
	now := time.Now()
	c.Accepted = accepted
	c.RespondedAt = &now
	f.collaborators[key] = c

	return c, nil
}

func (f *fakeInvitationRepo) IsAcceptedCollaborator(_ context.Context, eventID, userID uint) (bool, error) {
	c, ok := f.collaborators[participationKey{eventID, userID}]

	return ok && c.Accepted, nil
}

type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeNotifier struct {
	sent    []sentMail
	sendErr error
}

func (f *fakeNotifier) Send(toAddress, subject, body string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, sentMail{to: toAddress, subject: subject, body: body})

	return nil
}

func (f *fakeNotifier) ResponseLink(eventID uint, email string) string {
	return "https://runevents.example.com/invites/respond"
}

type fakeGateway struct {
	subaccountCode string
	subaccountErr  error
	initializeErr  error
	initialized    []int
	verifyResult   paystack.VerifyResult
	verifyErr      error
	verifyCalls    int
}

func (f *fakeGateway) CreateSubaccount(_ context.Context, _, _, _, _ string) (string, error) {
	if f.subaccountErr != nil {
		return "", f.subaccountErr
	}

	return f.subaccountCode, nil
}

func (f *fakeGateway) Initialize(_ context.Context, _ string, amount int, reference, _ string) (string, error) {
	if f.initializeErr != nil {
		return "", f.initializeErr
	}
	f.initialized = append(f.initialized, amount)

	return "https://checkout.example.com/" + reference, nil
}

func (f *fakeGateway) Verify(_ context.Context, _ string) (paystack.VerifyResult, error) {
	f.verifyCalls++
	if f.verifyErr != nil {
		return paystack.VerifyResult{}, f.verifyErr
	}

	return f.verifyResult, nil
}
