package model

import (
	"encoding/json"
	"time"
)

type Status string

const (
	StatusPending         Status = "PENDING"
	StatusApproved        Status = "APPROVED"
	StatusBorrowed        Status = "BORROWED"
	StatusReturnInitiated Status = "RETURN_INITIATED"
	StatusReturned        Status = "RETURNED"
	StatusDenied          Status = "DENIED"
)

type Condition string

const (
	ConditionExcellent Condition = "EXCELLENT"
	ConditionGood      Condition = "GOOD"
	ConditionWorn      Condition = "WORN"
)

// Method describes how a book physically changes hands.
type Method string

const (
	MethodShip   Method = "SHIP"
	MethodMeetup Method = "MEETUP"
	MethodPickup Method = "PICKUP"
)

type InviteStatus string

const (
	InvitePending  InviteStatus = "PENDING"
	InviteAccepted InviteStatus = "ACCEPTED"
	InviteDeclined InviteStatus = "DECLINED"
)

type User struct {
	ID           int       `json:"-" db:"id"`
	UserUid      string    `json:"userUid" db:"user_uid"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FullName     string    `json:"fullName" db:"full_name"`
	Bio          string    `json:"bio" db:"bio"`
	AvatarURL    string    `json:"avatarUrl" db:"avatar_url"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

type Book struct {
	ID           int       `json:"-" db:"id"`
	BookUid      string    `json:"bookUid" db:"book_uid"`
	OwnerID      int       `json:"-" db:"owner_id"`
	OwnerUid     string    `json:"ownerUid" db:"owner_uid"`
	Title        string    `json:"title" db:"title"`
	Author       string    `json:"author" db:"author"`
	Genre        string    `json:"genre" db:"genre"`
	Condition    Condition `json:"condition" db:"condition"`
	Description  string    `json:"description" db:"description"`
	CoverURL     string    `json:"coverUrl" db:"cover_url"`
	Borrowable   bool      `json:"borrowable" db:"borrowable"`
	CommunityUid *string   `json:"communityUid,omitempty" db:"community_uid"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

type BorrowRequest struct {
	ID             int        `json:"-" db:"id"`
	RequestUid     string     `json:"requestUid" db:"request_uid"`
	BookID         int        `json:"-" db:"book_id"`
	BookUid        string     `json:"bookUid" db:"book_uid"`
	BorrowerID     int        `json:"-" db:"borrower_id"`
	BorrowerUid    string     `json:"borrowerUid" db:"borrower_uid"`
	OwnerUid       string     `json:"ownerUid" db:"owner_uid"`
	Status         Status     `json:"status" db:"status"`
	HandoverMethod *Method    `json:"handoverMethod,omitempty" db:"handover_method"`
	ReturnMethod   *Method    `json:"returnMethod,omitempty" db:"return_method"`
	DueDate        *time.Time `json:"dueDate,omitempty" db:"due_date"`
	Message        string     `json:"message" db:"message"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time  `json:"updatedAt" db:"updated_at"`
}

type Review struct {
	ID          int       `json:"-" db:"id"`
	BookUid     string    `json:"bookUid" db:"book_uid"`
	ReviewerUid string    `json:"reviewerUid" db:"reviewer_uid"`
	Reviewer    string    `json:"reviewer" db:"reviewer"`
	Stars       int       `json:"stars" db:"stars"`
	Body        string    `json:"body" db:"body"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

type Rating struct {
	Stars float64 `json:"stars" db:"stars"`
	Count int     `json:"count" db:"count"`
}

type Notification struct {
	ID        int             `json:"id" db:"id"`
	Kind      string          `json:"kind" db:"kind"`
	Payload   json.RawMessage `json:"payload" db:"payload"`
	Read      bool            `json:"read" db:"read"`
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
}

type Message struct {
	ID         int       `json:"id" db:"id"`
	SenderUid  string    `json:"senderUid" db:"sender_uid"`
	SenderName string    `json:"senderName" db:"sender_name"`
	Body       string    `json:"body" db:"body"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

type Community struct {
	ID           int       `json:"-" db:"id"`
	CommunityUid string    `json:"communityUid" db:"community_uid"`
	Name         string    `json:"name" db:"name"`
	Description  string    `json:"description" db:"description"`
	OwnerUid     string    `json:"ownerUid" db:"owner_uid"`
	Members      int       `json:"members" db:"members"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

type CommunityMember struct {
	UserUid  string    `json:"userUid" db:"user_uid"`
	Username string    `json:"username" db:"username"`
	JoinedAt time.Time `json:"joinedAt" db:"joined_at"`
}

type CommunityInvitation struct {
	ID           int          `json:"-" db:"id"`
	InviteToken  string       `json:"inviteToken" db:"invite_token"`
	CommunityUid string       `json:"communityUid" db:"community_uid"`
	InviterUid   string       `json:"inviterUid" db:"inviter_uid"`
	InviteeEmail string       `json:"inviteeEmail" db:"invitee_email"`
	Status       InviteStatus `json:"status" db:"status"`
	CreatedAt    time.Time    `json:"createdAt" db:"created_at"`
}

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

type ListBooks struct {
	Paging
	Items []Book `json:"items"`
}
