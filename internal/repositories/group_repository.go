package repositories

import (
	"context"
	"errors"
	"time"

	"giglink_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrGroupNotFound       = errors.New("group not found")
	ErrGroupMemberNotFound = errors.New("group member not found")
	ErrDuplicateMembership = errors.New("profile is already a member of this group")
)

type GroupRepository interface {
	Create(ctx context.Context, group *models.Group, creatorRole string) error
	FindByID(ctx context.Context, id string) (*models.Group, error)
	List(ctx context.Context) ([]models.Group, error)
	ListByMember(ctx context.Context, profileID string) ([]models.Group, error)
	Update(ctx context.Context, group *models.Group) error
	Delete(ctx context.Context, id string) error

	AddMember(ctx context.Context, member *models.GroupMember) error
	RemoveMember(ctx context.Context, groupID, profileID string) error
	ListMembers(ctx context.Context, groupID string) ([]models.GroupMember, error)
	IsMember(ctx context.Context, groupID, profileID string) (bool, error)
	EnsureCreatorMembership(ctx context.Context, group *models.Group, role string) error
}

type GroupRepositoryImpl struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &GroupRepositoryImpl{db: db}
}

// Create inserts the group and its creator membership in one transaction so a
// group never exists without its creator as a member.
func (r *GroupRepositoryImpl) Create(ctx context.Context, group *models.Group, creatorRole string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}
		member := &models.GroupMember{
			GroupID:   group.ID,
			ProfileID: group.CreatedBy,
			Role:      creatorRole,
		}
		return tx.Create(member).Error
	})
}

func (r *GroupRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Group, error) {
	var group models.Group
	err := r.db.WithContext(ctx).First(&group, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	return &group, nil
}

func (r *GroupRepositoryImpl) List(ctx context.Context) ([]models.Group, error) {
	var groups []models.Group
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&groups).Error
	return groups, err
}

func (r *GroupRepositoryImpl) ListByMember(ctx context.Context, profileID string) ([]models.Group, error) {
	var groups []models.Group
	err := r.db.WithContext(ctx).
		Joins("JOIN group_members ON group_members.group_id = groups.id").
		Where("group_members.profile_id = ?", profileID).
		Order("groups.created_at DESC").
		Find(&groups).Error
	return groups, err
}

func (r *GroupRepositoryImpl) Update(ctx context.Context, group *models.Group) error {
	result := r.db.WithContext(ctx).Model(group).Updates(map[string]interface{}{
		"name":        group.Name,
		"description": group.Description,
		"genre":       group.Genre,
		"updated_at":  time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGroupNotFound
	}
	return nil
}

func (r *GroupRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ?", id).Delete(&models.GroupMember{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&models.Group{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrGroupNotFound
		}
		return nil
	})
}

// AddMember relies on the (group_id, profile_id) unique index to keep
// membership single per profile per group.
func (r *GroupRepositoryImpl) AddMember(ctx context.Context, member *models.GroupMember) error {
	if err := r.db.WithContext(ctx).Create(member).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateMembership
		}
		return err
	}
	return nil
}

func (r *GroupRepositoryImpl) RemoveMember(ctx context.Context, groupID, profileID string) error {
	result := r.db.WithContext(ctx).
		Where("group_id = ? AND profile_id = ?", groupID, profileID).
		Delete(&models.GroupMember{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGroupMemberNotFound
	}
	return nil
}

func (r *GroupRepositoryImpl) ListMembers(ctx context.Context, groupID string) ([]models.GroupMember, error) {
	var members []models.GroupMember
	err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("created_at ASC").
		Find(&members).Error
	return members, err
}

func (r *GroupRepositoryImpl) IsMember(ctx context.Context, groupID, profileID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.GroupMember{}).
		Where("group_id = ? AND profile_id = ?", groupID, profileID).
		Count(&count).Error
	return count > 0, err
}

// EnsureCreatorMembership repairs groups whose creator row went missing. The
// duplicate-key path makes it safe to call on every group read.
func (r *GroupRepositoryImpl) EnsureCreatorMembership(ctx context.Context, group *models.Group, role string) error {
	member := &models.GroupMember{
		GroupID:   group.ID,
		ProfileID: group.CreatedBy,
		Role:      role,
	}
	if err := r.db.WithContext(ctx).Create(member).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}
	return nil
}
