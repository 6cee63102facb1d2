package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bookshare/bookshare-service/internal/errs"
	"github.com/bookshare/bookshare-service/internal/model"
)

const communityColumns = `c.id, c.community_uid, c.name, c.description, o.user_uid as owner_uid, c.created_at,
	(select count(*) from community_members cm where cm.community_id = c.id) as members`

func (r *repository) communitySelect() sq.SelectBuilder {
	return qb.Select(communityColumns).
		From(communitiesTableName + " c").
		Join(fmt.Sprintf("%s o on o.id = c.owner_id", usersTableName))
}

// CreateCommunity inserts the community and enrols the owner as its first
// member in one transaction.
func (r *repository) CreateCommunity(ctx context.Context, req model.CreateCommunityRequest) (model.Community, error) {
	communityUid := uuid.New().String()
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		q := `
insert into communities (community_uid, name, description, owner_id)
select $1, $2, $3, u.id
from users u
where u.user_uid = $4
returning id, owner_id`

		var id, ownerID int
		if err := tx.QueryRowContext(ctx, q, communityUid, req.Name, req.Description, req.OwnerUid).Scan(&id, &ownerID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.ErrNotFound
			}
			return err
		}

		_, err := tx.ExecContext(ctx,
			fmt.Sprintf("insert into %s (community_id, user_id) values ($1, $2)", membersTableName),
			id, ownerID)
		return err
	})
	if err != nil {
		return model.Community{}, err
	}
	return r.GetCommunity(ctx, communityUid)
}

func (r *repository) GetCommunity(ctx context.Context, communityUid string) (model.Community, error) {
	q, args, err := r.communitySelect().
		Where(sq.Eq{"c.community_uid": communityUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Community{}, err
	}

	var community model.Community
	if err := r.db.GetContext(ctx, &community, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Community{}, errs.ErrNotFound
		}
		return model.Community{}, err
	}
	return community, nil
}

func (r *repository) ListCommunities(ctx context.Context, userUid string) ([]model.Community, error) {
	q, args, err := r.communitySelect().
		Join(fmt.Sprintf("%s cm on cm.community_id = c.id", membersTableName)).
		Join(fmt.Sprintf("%s m on m.id = cm.user_id", usersTableName)).
		Where(sq.Eq{"m.user_uid": userUid}).
		OrderBy("c.created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}

	var items []model.Community
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) ListMembers(ctx context.Context, communityUid string) ([]model.CommunityMember, error) {
	q, args, err := qb.Select("u.user_uid", "u.username", "cm.joined_at").
		From(membersTableName + " cm").
		Join(fmt.Sprintf("%s c on c.id = cm.community_id", communitiesTableName)).
		Join(fmt.Sprintf("%s u on u.id = cm.user_id", usersTableName)).
		Where(sq.Eq{"c.community_uid": communityUid}).
		OrderBy("cm.joined_at asc").
		ToSql()
	if err != nil {
		return nil, err
	}

	var members []model.CommunityMember
	if err := r.db.SelectContext(ctx, &members, q, args...); err != nil {
		return nil, err
	}
	return members, nil
}

func (r *repository) IsMember(ctx context.Context, communityUid, userUid string) (bool, error) {
	q := `
select exists (
	select 1
	from community_members cm
	join communities c on c.id = cm.community_id
	join users u on u.id = cm.user_id
	where c.community_uid = $1 and u.user_uid = $2
)`

	var ok bool
	if err := r.db.QueryRowContext(ctx, q, communityUid, userUid).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (r *repository) LeaveCommunity(ctx context.Context, communityUid, userUid string) error {
	q := `
delete from community_members cm
using communities c, users u
where c.id = cm.community_id and u.id = cm.user_id
  and c.community_uid = $1 and u.user_uid = $2`

	res, err := r.db.ExecContext(ctx, q, communityUid, userUid)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrNotMember
	}
	return nil
}

func (r *repository) CreateInvitation(ctx context.Context, communityUid, inviterUid, inviteeEmail string) (model.CommunityInvitation, error) {
	token := uuid.New().String()
	q := `
insert into community_invitations (invite_token, community_id, inviter_id, invitee_email)
select $1, c.id, u.id, $4
from communities c, users u
where c.community_uid = $2 and u.user_uid = $3
returning id`

	var id int
	if err := r.db.QueryRowContext(ctx, q, token, communityUid, inviterUid, inviteeEmail).Scan(&id); err != nil {
		r.log.Error("CreateInvitation", zap.Error(err))
		if errors.Is(err, sql.ErrNoRows) {
			return model.CommunityInvitation{}, errs.ErrNotFound
		}
		return model.CommunityInvitation{}, wrapPgErr(err)
	}
	return r.GetInvitation(ctx, token)
}

func (r *repository) GetInvitation(ctx context.Context, token string) (model.CommunityInvitation, error) {
	q, args, err := qb.Select("i.id", "i.invite_token", "c.community_uid", "u.user_uid as inviter_uid", "i.invitee_email", "i.status", "i.created_at").
		From(invitationsTableName + " i").
		Join(fmt.Sprintf("%s c on c.id = i.community_id", communitiesTableName)).
		Join(fmt.Sprintf("%s u on u.id = i.inviter_id", usersTableName)).
		Where(sq.Eq{"i.invite_token": token}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.CommunityInvitation{}, err
	}

	var invite model.CommunityInvitation
	if err := r.db.GetContext(ctx, &invite, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.CommunityInvitation{}, errs.ErrNotFound
		}
		return model.CommunityInvitation{}, err
	}
	return invite, nil
}

// AcceptInvitation resolves a pending invitation and enrols the accepting
// user in one transaction. The status guard keeps a token from being
// redeemed twice.
func (r *repository) AcceptInvitation(ctx context.Context, token, userUid string) error {
	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		q := `
update community_invitations
set status = 'ACCEPTED'
where invite_token = $1 and status = 'PENDING'
returning community_id`

		var communityID int
		if err := tx.QueryRowContext(ctx, q, token).Scan(&communityID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.ErrInviteResolved
			}
			return err
		}

		ins := `
insert into community_members (community_id, user_id)
select $1, u.id from users u where u.user_uid = $2
on conflict do nothing`
		_, err := tx.ExecContext(ctx, ins, communityID, userUid)
		return err
	})
}

func (r *repository) DeclineInvitation(ctx context.Context, token string) error {
	q := `
update community_invitations
set status = 'DECLINED'
where invite_token = $1 and status = 'PENDING'`

	res, err := r.db.ExecContext(ctx, q, token)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrInviteResolved
	}
	return nil
}
