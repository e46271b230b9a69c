package services

import (
	"context"
	"errors"

	"giglink_backend/internal/authz"
	"giglink_backend/internal/models"
	"giglink_backend/internal/repositories"
	"giglink_backend/internal/services/dto"
	"giglink_backend/pkg/apperrors"
)

const defaultCreatorRole = "creator"

type GroupService struct {
	groups   repositories.GroupRepository
	profiles repositories.ProfileRepository
	gate     *authz.Gate
}

func NewGroupService(groups repositories.GroupRepository, profiles repositories.ProfileRepository, gate *authz.Gate) *GroupService {
	return &GroupService{groups: groups, profiles: profiles, gate: gate}
}

// Create forms a group with the requester as creator and first member.
// Only artist-type profiles form groups.
func (s *GroupService) Create(ctx context.Context, requesterID string, req dto.CreateGroupRequest) (*models.Group, error) {
	profile, err := s.profiles.FindByID(ctx, requesterID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if profile.Type != models.ProfileTypeArtist {
		return nil, apperrors.ErrInvalidProfileType
	}

	role := req.CreatorRole
	if role == "" {
		role = defaultCreatorRole
	}

	group := &models.Group{
		Name:        req.Name,
		Description: req.Description,
		Genre:       req.Genre,
		CreatedBy:   requesterID,
	}
	if err := s.groups.Create(ctx, group, role); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return group, nil
}

// Get is a public read. It also repairs a missing creator membership, so
// older rows converge back to the invariant on first read.
func (s *GroupService) Get(ctx context.Context, id string) (*models.Group, error) {
	group, err := s.groups.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrGroupNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.groups.EnsureCreatorMembership(ctx, group, defaultCreatorRole); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return group, nil
}

func (s *GroupService) List(ctx context.Context) ([]models.Group, error) {
	groups, err := s.groups.List(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return groups, nil
}

// ListMine returns the groups the requester belongs to.
func (s *GroupService) ListMine(ctx context.Context, requesterID string) ([]models.Group, error) {
	groups, err := s.groups.ListByMember(ctx, requesterID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return groups, nil
}

func (s *GroupService) Update(ctx context.Context, requesterID, groupID string, req dto.UpdateGroupRequest) (*models.Group, error) {
	group, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, repositories.ErrGroupNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.gate.Authorize(authz.EntityGroup, authz.OpUpdate, requesterID, authz.GroupRow{CreatedBy: group.CreatedBy}); err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	if req.Name != nil {
		group.Name = *req.Name
	}
	if req.Description != nil {
		group.Description = req.Description
	}
	if req.Genre != nil {
		group.Genre = req.Genre
	}

	if err := s.groups.Update(ctx, group); err != nil {
		if errors.Is(err, repositories.ErrGroupNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return group, nil
}

func (s *GroupService) Delete(ctx context.Context, requesterID, groupID string) error {
	group, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, repositories.ErrGroupNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if err := s.gate.Authorize(authz.EntityGroup, authz.OpDelete, requesterID, authz.GroupRow{CreatedBy: group.CreatedBy}); err != nil {
		return apperrors.ErrNotFound(err)
	}

	if err := s.groups.Delete(ctx, groupID); err != nil {
		if errors.Is(err, repositories.ErrGroupNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// AddMember invites an artist into the group. Only the creator adds, only
// artist-type profiles join, and a profile joins a group once.
func (s *GroupService) AddMember(ctx context.Context, requesterID, groupID string, req dto.AddGroupMemberRequest) (*models.GroupMember, error) {
	group, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, repositories.ErrGroupNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	row := authz.GroupMemberRow{GroupCreatedBy: group.CreatedBy, MemberID: req.ProfileID}
	if err := s.gate.Authorize(authz.EntityGroupMember, authz.OpCreate, requesterID, row); err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	target, err := s.profiles.FindByID(ctx, req.ProfileID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if target.Type != models.ProfileTypeArtist {
		return nil, apperrors.ErrInvalidProfileType
	}

	member := &models.GroupMember{
		GroupID:   groupID,
		ProfileID: req.ProfileID,
		Role:      req.Role,
	}
	if err := s.groups.AddMember(ctx, member); err != nil {
		if errors.Is(err, repositories.ErrDuplicateMembership) {
			return nil, apperrors.ErrAlreadyMember
		}
		return nil, apperrors.InternalError(err)
	}
	return member, nil
}

// RemoveMember drops a membership. The creator removes anyone else; a
// member removes themself. The creator's own membership is permanent.
func (s *GroupService) RemoveMember(ctx context.Context, requesterID, groupID, profileID string) error {
	group, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, repositories.ErrGroupNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if profileID == group.CreatedBy {
		return apperrors.ErrInvalidOperation("groups", "The group creator cannot be removed")
	}

	row := authz.GroupMemberRow{GroupCreatedBy: group.CreatedBy, MemberID: profileID}
	if err := s.gate.Authorize(authz.EntityGroupMember, authz.OpDelete, requesterID, row); err != nil {
		return apperrors.ErrNotFound(err)
	}

	if err := s.groups.RemoveMember(ctx, groupID, profileID); err != nil {
		if errors.Is(err, repositories.ErrGroupMemberNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// ListMembers is a public read of the group roster.
func (s *GroupService) ListMembers(ctx context.Context, groupID string) ([]models.GroupMember, error) {
	if _, err := s.groups.FindByID(ctx, groupID); err != nil {
		if errors.Is(err, repositories.ErrGroupNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	members, err := s.groups.ListMembers(ctx, groupID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return members, nil
}
