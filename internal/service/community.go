package service

import (
	"context"

	"github.com/bookshare/bookshare-service/internal/errs"
	"github.com/bookshare/bookshare-service/internal/model"
)

func (s *Service) CreateCommunity(ctx context.Context, req model.CreateCommunityRequest) (model.Community, error) {
	return s.repo.CreateCommunity(ctx, req)
}

func (s *Service) ListCommunities(ctx context.Context, userUid string) ([]model.Community, error) {
	return s.repo.ListCommunities(ctx, userUid)
}

func (s *Service) GetCommunity(ctx context.Context, communityUid string) (model.Community, error) {
	return s.repo.GetCommunity(ctx, communityUid)
}

func (s *Service) ListMembers(ctx context.Context, communityUid string) ([]model.CommunityMember, error) {
	if _, err := s.repo.GetCommunity(ctx, communityUid); err != nil {
		return nil, err
	}
	return s.repo.ListMembers(ctx, communityUid)
}

// LeaveCommunity removes the caller from a community. The owner cannot
// leave; a community without its owner has nobody to manage invitations.
func (s *Service) LeaveCommunity(ctx context.Context, communityUid, userUid string) error {
	community, err := s.repo.GetCommunity(ctx, communityUid)
	if err != nil {
		return err
	}
	if community.OwnerUid == userUid {
		return errs.ErrForbidden
	}
	return s.repo.LeaveCommunity(ctx, communityUid, userUid)
}

// Invite creates an invitation and notifies the invitee if they already
// have an account. Only members may invite.
func (s *Service) Invite(ctx context.Context, communityUid, inviterUid, inviteeEmail string) (model.CommunityInvitation, error) {
	member, err := s.repo.IsMember(ctx, communityUid, inviterUid)
	if err != nil {
		return model.CommunityInvitation{}, err
	}
	if !member {
		return model.CommunityInvitation{}, errs.ErrNotMember
	}

	invite, err := s.repo.CreateInvitation(ctx, communityUid, inviterUid, inviteeEmail)
	if err != nil {
		return model.CommunityInvitation{}, err
	}

	// the invitee only gets an in-app notification if they already signed up
	if invitee, err := s.repo.GetUserByEmail(ctx, inviteeEmail); err == nil {
		community, err := s.repo.GetCommunity(ctx, communityUid)
		if err == nil {
			s.notify(invitee.UserUid, model.KindCommunityInvite, map[string]any{
				"communityUid": communityUid,
				"community":    community.Name,
				"inviteToken":  invite.InviteToken,
				"inviterUid":   inviterUid,
			})
		}
	}
	return invite, nil
}

func (s *Service) AcceptInvitation(ctx context.Context, token, userUid string) (model.Community, error) {
	invite, err := s.repo.GetInvitation(ctx, token)
	if err != nil {
		return model.Community{}, err
	}
	if err := s.repo.AcceptInvitation(ctx, token, userUid); err != nil {
		return model.Community{}, err
	}
	return s.repo.GetCommunity(ctx, invite.CommunityUid)
}

func (s *Service) DeclineInvitation(ctx context.Context, token string) error {
	if _, err := s.repo.GetInvitation(ctx, token); err != nil {
		return err
	}
	return s.repo.DeclineInvitation(ctx, token)
}
