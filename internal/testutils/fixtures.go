package testutils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	meetingmodel "terminal-terrace/tutoring-service/internal/model/meeting"
	"terminal-terrace/tutoring-service/internal/model/user"
)

// CreateTestUser creates a test user with a unique username
func CreateTestUser(db *gorm.DB, opts ...UserOption) *user.User {
	uniqueID := uuid.New().String()
	username := fmt.Sprintf("test_user_%s", uniqueID)

	// Default password hash
	passwordHash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)

	testUser := &user.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		Role:         user.RoleStudent,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	for _, opt := range opts {
		opt(testUser)
	}

	if err := db.Create(testUser).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test user: %v", err))
	}

	return testUser
}

// UserOption configures test user
type UserOption func(*user.User)

// WithUsername sets the username
func WithUsername(username string) UserOption {
	return func(u *user.User) {
		u.Username = username
	}
}

// WithRole sets the role
func WithRole(role user.Role) UserOption {
	return func(u *user.User) {
		u.Role = role
	}
}

// WithName sets the display name
func WithName(name string) UserOption {
	return func(u *user.User) {
		u.Name = &name
	}
}

// WithTutor assigns a tutor to a student user
func WithTutor(tutorID int) UserOption {
	return func(u *user.User) {
		u.TutorID = &tutorID
	}
}

// WithPassword sets the password (will be hashed)
func WithPassword(password string) UserOption {
	return func(u *user.User) {
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		u.PasswordHash = string(hash)
	}
}

// CreateTestMeeting creates a meeting between a tutor and a student
func CreateTestMeeting(db *gorm.DB, tutorID, studentID int, opts ...MeetingOption) *meetingmodel.Meeting {
	m := &meetingmodel.Meeting{
		TutorID:   tutorID,
		StudentID: studentID,
		Date:      time.Now(),
	}

	for _, opt := range opts {
		opt(m)
	}

	if err := db.Create(m).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test meeting: %v", err))
	}

	return m
}

// MeetingOption configures test meeting
type MeetingOption func(*meetingmodel.Meeting)

// WithDate sets the meeting date
func WithDate(date time.Time) MeetingOption {
	return func(m *meetingmodel.Meeting) {
		m.Date = date
	}
}

// WithDiscussion sets the discussion text
func WithDiscussion(discussion string) MeetingOption {
	return func(m *meetingmodel.Meeting) {
		m.Discussion = discussion
	}
}
