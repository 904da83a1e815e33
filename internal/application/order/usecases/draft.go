package usecases

import (
	"fieldops/internal/domain/order"
	vo "fieldops/internal/domain/order/value_objects"
	"fieldops/internal/shared/errors"
)

// OrderDraft carries the editable field-save payload. Nil fields are left
// untouched so a partial save never clobbers concurrent edits to other
// fields.
type OrderDraft struct {
	ClientName          *string
	ContactPhone        *string
	ContactEmail        *string
	ServiceCategory     *string
	Address             *string
	Latitude            *float64
	Longitude           *float64
	ProblemDescription  *string
	WorkNotes           *string
	MaterialNotes       *string
	LaborCostCents      *int64
	MaterialCostCents   *int64
	AssignedTechnicians []string
	PhotosBefore        []string
	PhotosDuring        []string
	PhotosAfter         []string
}

func applyDraft(o *order.ServiceOrder, draft OrderDraft) error {
	if draft.ClientName != nil || draft.ContactPhone != nil || draft.ContactEmail != nil {
		clientName := o.ClientName()
		contactPhone := o.ContactPhone()
		contactEmail := o.ContactEmail()
		if draft.ClientName != nil {
			clientName = *draft.ClientName
		}
		if draft.ContactPhone != nil {
			contactPhone = *draft.ContactPhone
		}
		if draft.ContactEmail != nil {
			contactEmail = *draft.ContactEmail
		}
		if err := o.UpdateContact(clientName, contactPhone, contactEmail); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}

	if draft.ServiceCategory != nil {
		category, err := vo.NewServiceCategory(*draft.ServiceCategory)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := o.UpdateServiceCategory(category); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}

	if draft.Address != nil {
		o.UpdateAddress(*draft.Address)
	}
	if draft.Latitude != nil && draft.Longitude != nil {
		o.SetCoordinates(*draft.Latitude, *draft.Longitude)
	}
	if draft.ProblemDescription != nil {
		o.UpdateProblemDescription(*draft.ProblemDescription)
	}
	if draft.WorkNotes != nil {
		o.UpdateWorkNotes(*draft.WorkNotes)
	}
	if draft.MaterialNotes != nil {
		o.UpdateMaterialNotes(*draft.MaterialNotes)
	}

	if draft.LaborCostCents != nil || draft.MaterialCostCents != nil {
		labor := o.LaborCostCents()
		material := o.MaterialCostCents()
		if draft.LaborCostCents != nil {
			labor = *draft.LaborCostCents
		}
		if draft.MaterialCostCents != nil {
			material = *draft.MaterialCostCents
		}
		if err := o.SetCosts(labor, material); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}

	if draft.AssignedTechnicians != nil {
		o.AssignTechnicians(draft.AssignedTechnicians)
	}

	if draft.PhotosBefore != nil || draft.PhotosDuring != nil || draft.PhotosAfter != nil {
		photos := o.Photos()
		if draft.PhotosBefore != nil {
			photos.Before = draft.PhotosBefore
		}
		if draft.PhotosDuring != nil {
			photos.During = draft.PhotosDuring
		}
		if draft.PhotosAfter != nil {
			photos.After = draft.PhotosAfter
		}
		o.SetPhotos(photos)
	}

	return nil
}
