package visibility

import (
	"sort"

	"github.com/pdcgo/pool_service/authorization_iface"
	"github.com/pdcgo/pool_service/pool_model"
	"gorm.io/gorm"
)

// Viewer is the requesting user as seen by the masking rules.
type Viewer struct {
	UserID    uint
	IsAdmin   bool
	managed   map[uint]bool
	investors map[uint]bool
}

func NewViewer(userID uint, isAdmin bool, managedBusinessIDs ...uint) *Viewer {
	v := &Viewer{
		UserID:  userID,
		IsAdmin: isAdmin,
		managed: map[uint]bool{},
	}

	for _, id := range managedBusinessIDs {
		v.managed[id] = true
	}

	return v
}

// LoadViewer reads the manager grants of the user.
func LoadViewer(tx *gorm.DB, userID uint, isAdmin bool) (*Viewer, error) {
	ids := []uint{}
	err := tx.
		Model(&pool_model.BusinessManager{}).
		Where("user_id = ?", userID).
		Pluck("business_id", &ids).
		Error

	if err != nil {
		return nil, err
	}

	return NewViewer(userID, isAdmin, ids...), nil
}

func ViewerFromIdentity(tx *gorm.DB, identity authorization_iface.Identity) (*Viewer, error) {
	return LoadViewer(tx, identity.GetUserID(), identity.IsSuperUser())
}

func (v *Viewer) ManagedBusinessIDs() []uint {
	ids := make([]uint, 0, len(v.managed))
	for id := range v.managed {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (v *Viewer) Manages(businessID uint) bool {
	return v.managed[businessID]
}

func (v *Viewer) CanSeeBusiness(businessID uint) bool {
	return v.IsAdmin || v.managed[businessID]
}

// CanSeeRecord decides visibility of the user that recorded an entry.
func (v *Viewer) CanSeeRecord(recorderID, businessID uint) bool {
	return v.IsAdmin || v.UserID == recorderID || v.managed[businessID]
}

// LoadInvestors remembers the investors of the managed businesses, needed by CanSeeUser.
func (v *Viewer) LoadInvestors(tx *gorm.DB) error {
	v.investors = map[uint]bool{}
	if len(v.managed) == 0 {
		return nil
	}

	ids := []uint{}
	err := tx.
		Model(&pool_model.Investment{}).
		Where("business_id in ?", v.ManagedBusinessIDs()).
		Distinct("user_id").
		Pluck("user_id", &ids).
		Error

	if err != nil {
		return err
	}

	for _, id := range ids {
		v.investors[id] = true
	}

	return nil
}

// VisibleUserIDs lists the users a non admin viewer sees unmasked, requires LoadInvestors.
func (v *Viewer) VisibleUserIDs() []uint {
	ids := []uint{v.UserID}
	for id := range v.investors {
		if id != v.UserID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (v *Viewer) CanSeeUser(subjectID uint) bool {
	return v.IsAdmin || v.UserID == subjectID || v.investors[subjectID]
}

func (v *Viewer) Mask(username string, subjectID uint, canSee bool) string {
	return Mask(username, v.UserID, subjectID, canSee)
}
