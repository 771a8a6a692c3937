package user

import (
	"time"
)

const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// Cadence is a notification frequency the user can pick in settings.
type Cadence string

const (
	CadenceEveryMinute Cadence = "1m"
	CadenceHourly      Cadence = "1h"
	CadenceDaily       Cadence = "1d"
	CadenceWeekly      Cadence = "1w"
)

func (c Cadence) Valid() bool {
	switch c {
	case CadenceEveryMinute, CadenceHourly, CadenceDaily, CadenceWeekly:
		return true
	}
	return false
}

type Settings struct {
	EmailNotif bool    `json:"emailNotif" firestore:"emailNotif"`
	DarkMode   bool    `json:"darkMode" firestore:"darkMode"`
	Frequency  Cadence `json:"notifFrequency" firestore:"notifFrequency"`
}

func DefaultSettings() Settings {
	return Settings{EmailNotif: true, DarkMode: false, Frequency: CadenceDaily}
}

// ApplyLog is an immutable record of a user triggering an apply action.
type ApplyLog struct {
	JobTitle string    `json:"jobTitle" firestore:"jobTitle"`
	Company  string    `json:"company" firestore:"company"`
	URL      string    `json:"url" firestore:"url"`
	Date     time.Time `json:"date" firestore:"date"`
}

type User struct {
	ID           string     `json:"id" firestore:"-"`
	Name         string     `json:"name" firestore:"name"`
	Email        string     `json:"email" firestore:"email"`
	PasswordHash string     `json:"-" firestore:"passwordHash"`
	Provider     string     `json:"provider" firestore:"provider"`
	Picture      string     `json:"profilePicture" firestore:"profilePicture"`
	Phone        string     `json:"phone" firestore:"phone"`
	Skills       []string   `json:"skills" firestore:"skills"`
	ResumeName   string     `json:"resumeName" firestore:"resumeName"`
	Verified     bool       `json:"isVerified" firestore:"isVerified"`
	OTP          string     `json:"-" firestore:"otp"`
	OTPExpiry    time.Time  `json:"-" firestore:"otpExpiry"`
	ApplyLogs    []ApplyLog `json:"applyLogs" firestore:"applyLogs"`
	Settings     Settings   `json:"settings" firestore:"settings"`
	SentJobKeys  []string   `json:"lastSentJobs" firestore:"lastSentJobs"`
	CreatedAt    time.Time  `json:"createdAt" firestore:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt" firestore:"updatedAt"`
}

// HasOTP reports whether an unconsumed verification code is pending.
func (u User) HasOTP() bool {
	return u.OTP != "" && !u.OTPExpiry.IsZero()
}

// ClearOTP removes a consumed or superseded verification code.
func (u *User) ClearOTP() {
	u.OTP = ""
	u.OTPExpiry = time.Time{}
}
