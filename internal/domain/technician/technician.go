package technician

import (
	"fmt"
	"time"

	vo "fieldops/internal/domain/technician/value_objects"
)

// Technician is a field worker. Orders reference technicians by name, so a
// rename here does not cascade into already-assigned orders.
type Technician struct {
	id           string
	name         string
	phone        string
	email        string
	specialty    vo.Specialty
	status       vo.TechnicianStatus
	username     string
	passwordHash string
	documentURLs []string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewTechnician(
	id string,
	name string,
	phone string,
	email string,
	specialty vo.Specialty,
) (*Technician, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("technician ID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if !specialty.IsValid() {
		return nil, fmt.Errorf("invalid specialty")
	}

	now := time.Now()

	return &Technician{
		id:           id,
		name:         name,
		phone:        phone,
		email:        email,
		specialty:    specialty,
		status:       vo.StatusAvailable,
		documentURLs: []string{},
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructTechnician(
	id string,
	name string,
	phone string,
	email string,
	specialty vo.Specialty,
	status vo.TechnicianStatus,
	username string,
	passwordHash string,
	documentURLs []string,
	createdAt, updatedAt time.Time,
) (*Technician, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("technician ID is required")
	}
	if !specialty.IsValid() {
		return nil, fmt.Errorf("invalid specialty")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	if documentURLs == nil {
		documentURLs = []string{}
	}

	return &Technician{
		id:           id,
		name:         name,
		phone:        phone,
		email:        email,
		specialty:    specialty,
		status:       status,
		username:     username,
		passwordHash: passwordHash,
		documentURLs: documentURLs,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (t *Technician) ID() string {
	return t.id
}

func (t *Technician) Name() string {
	return t.name
}

func (t *Technician) Phone() string {
	return t.phone
}

func (t *Technician) Email() string {
	return t.email
}

func (t *Technician) Specialty() vo.Specialty {
	return t.specialty
}

func (t *Technician) Status() vo.TechnicianStatus {
	return t.status
}

func (t *Technician) Username() string {
	return t.username
}

func (t *Technician) PasswordHash() string {
	return t.passwordHash
}

// HasCredentials reports whether the technician can log in.
func (t *Technician) HasCredentials() bool {
	return t.username != "" && t.passwordHash != ""
}

func (t *Technician) DocumentURLs() []string {
	urlsCopy := make([]string, len(t.documentURLs))
	copy(urlsCopy, t.documentURLs)
	return urlsCopy
}

func (t *Technician) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Technician) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Technician) UpdateProfile(name, phone, email string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	t.name = name
	t.phone = phone
	t.email = email
	t.updatedAt = time.Now()
	return nil
}

func (t *Technician) ChangeSpecialty(specialty vo.Specialty) error {
	if !specialty.IsValid() {
		return fmt.Errorf("invalid specialty")
	}
	t.specialty = specialty
	t.updatedAt = time.Now()
	return nil
}

func (t *Technician) ChangeStatus(status vo.TechnicianStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status: %s", status)
	}
	t.status = status
	t.updatedAt = time.Now()
	return nil
}

// SetCredentials attaches or replaces the login credential pair.
func (t *Technician) SetCredentials(username, passwordHash string) error {
	if len(username) == 0 {
		return fmt.Errorf("username is required")
	}
	if len(passwordHash) == 0 {
		return fmt.Errorf("password hash is required")
	}
	t.username = username
	t.passwordHash = passwordHash
	t.updatedAt = time.Now()
	return nil
}

// SetPasswordHash rewrites only the stored hash, used by the lazy credential
// migration after a successful legacy login.
func (t *Technician) SetPasswordHash(passwordHash string) error {
	if len(passwordHash) == 0 {
		return fmt.Errorf("password hash is required")
	}
	t.passwordHash = passwordHash
	t.updatedAt = time.Now()
	return nil
}

func (t *Technician) SetDocumentURLs(urls []string) {
	if urls == nil {
		urls = []string{}
	}
	urlsCopy := make([]string, len(urls))
	copy(urlsCopy, urls)
	t.documentURLs = urlsCopy
	t.updatedAt = time.Now()
}
