package model

import (
	"strings"
	"time"
)

// Date binds YYYY-MM-DD request fields.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=80"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"fullName" validate:"max=255"`
}

type AuthRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn"`
}

type UpdateProfileRequest struct {
	FullName  *string `json:"fullName" validate:"omitempty,max=255"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatarUrl" validate:"omitempty,url"`
}

type CreateBookRequest struct {
	Title        string    `json:"title" validate:"required,max=255"`
	Author       string    `json:"author" validate:"required,max=255"`
	Genre        string    `json:"genre" validate:"max=80"`
	Condition    Condition `json:"condition" validate:"required,oneof=EXCELLENT GOOD WORN"`
	Description  string    `json:"description"`
	CoverURL     string    `json:"coverUrl" validate:"omitempty,url"`
	CommunityUid string    `json:"communityUid" validate:"omitempty,uuid"`
	OwnerUid     string    `json:"-"`
}

type UpdateBookRequest struct {
	Title       *string    `json:"title" validate:"omitempty,max=255"`
	Author      *string    `json:"author" validate:"omitempty,max=255"`
	Genre       *string    `json:"genre" validate:"omitempty,max=80"`
	Condition   *Condition `json:"condition" validate:"omitempty,oneof=EXCELLENT GOOD WORN"`
	Description *string    `json:"description"`
	CoverURL    *string    `json:"coverUrl" validate:"omitempty,url"`
}

type BookFilter struct {
	Genre         string
	OwnerUid      string
	CommunityUid  string
	OnlyAvailable bool
	Page, Size    int
}

type CreateBorrowRequest struct {
	BookUid     string `json:"bookUid" validate:"required,uuid"`
	Message     string `json:"message" validate:"max=2000"`
	BorrowerUid string `json:"-"`
}

type ApproveRequest struct {
	DueDate        Date   `json:"dueDate" validate:"required"`
	HandoverMethod Method `json:"handoverMethod" validate:"required,oneof=SHIP MEETUP PICKUP"`
}

type InitiateReturnRequest struct {
	ReturnMethod Method `json:"returnMethod" validate:"required,oneof=SHIP MEETUP PICKUP"`
}

// RequestDetails is the aggregated view returned for a single borrow request.
type RequestDetails struct {
	BorrowRequest
	Book     Book `json:"book"`
	Borrower User `json:"borrower"`
	Owner    User `json:"owner"`
}

type CreateReviewRequest struct {
	Stars       int    `json:"stars" validate:"required,min=1,max=5"`
	Body        string `json:"body" validate:"max=4000"`
	BookUid     string `json:"-"`
	ReviewerUid string `json:"-"`
}

type SendMessageRequest struct {
	Body string `json:"body" validate:"required,max=4000"`
}

type CreateCommunityRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
	OwnerUid    string `json:"-"`
}

type InviteRequest struct {
	InviteeEmail string `json:"inviteeEmail" validate:"required,email"`
}

// NotificationEvent travels over the notification topic and is materialised
// into a notifications row by the consumer.
type NotificationEvent struct {
	UserUid string         `json:"userUid"`
	Kind    string         `json:"kind"`
	Payload map[string]any `json:"payload"`
}

const (
	KindRequestCreated  = "request_created"
	KindRequestApproved = "request_approved"
	KindRequestDenied   = "request_denied"
	KindHandover        = "handover_confirmed"
	KindReturnInitiated = "return_initiated"
	KindReturned        = "return_confirmed"
	KindNewMessage      = "new_message"
	KindCommunityInvite = "community_invite"
)

// MetadataBook is one hit from the external book-metadata search API.
type MetadataBook struct {
	Title          string   `json:"title"`
	Authors        []string `json:"authors"`
	FirstPublished int      `json:"firstPublished,omitempty"`
	ISBN           string   `json:"isbn,omitempty"`
	CoverURL       string   `json:"coverUrl,omitempty"`
}
