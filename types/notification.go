package types

type WeekDay string

const (
	WeekDayMonday    WeekDay = "MONDAY"
	WeekDayTuesday   WeekDay = "TUESDAY"
	WeekDayWednesday WeekDay = "WEDNESDAY"
	WeekDayThursday  WeekDay = "THURSDAY"
	WeekDayFriday    WeekDay = "FRIDAY"
	WeekDaySaturday  WeekDay = "SATURDAY"
	WeekDaySunday    WeekDay = "SUNDAY"
)

type MoodReminderFrequency string

const (
	MoodReminderDaily         MoodReminderFrequency = "DAILY"
	MoodReminderEveryOtherDay MoodReminderFrequency = "EVERY_OTHER_DAY"
	MoodReminderTwiceAWeek    MoodReminderFrequency = "TWICE_A_WEEK"
	MoodReminderWeekly        MoodReminderFrequency = "WEEKLY"
)

type NotificationSettings struct {
	ID                    int64                 `json:"id"`
	UserID                int64                 `json:"userId"`
	EnableDailyReminders  bool                  `json:"enableDailyReminders"`
	ReminderTime          string                `json:"reminderTime"` // HH:MM
	EnableWeeklyReport    bool                  `json:"enableWeeklyReport"`
	WeeklyReportDay       WeekDay               `json:"weeklyReportDay"`
	EnableMoodReminders   bool                  `json:"enableMoodReminders"`
	MoodReminderFrequency MoodReminderFrequency `json:"moodReminderFrequency"`
	CreatedAt             Timestamp             `json:"createdAt"`
	UpdatedAt             Timestamp             `json:"updatedAt"`
}

// UpdateNotificationSettingsRequest only carries the fields being changed.
type UpdateNotificationSettingsRequest struct {
	EnableDailyReminders  *bool                  `json:"enableDailyReminders,omitempty"`
	ReminderTime          *string                `json:"reminderTime,omitempty"`
	EnableWeeklyReport    *bool                  `json:"enableWeeklyReport,omitempty"`
	WeeklyReportDay       *WeekDay               `json:"weeklyReportDay,omitempty"`
	EnableMoodReminders   *bool                  `json:"enableMoodReminders,omitempty"`
	MoodReminderFrequency *MoodReminderFrequency `json:"moodReminderFrequency,omitempty"`
}

type NotificationType string

const (
	NotificationReminder     NotificationType = "REMINDER"
	NotificationTaskDue      NotificationType = "TASK_DUE"
	NotificationGoalAchieved NotificationType = "GOAL_ACHIEVED"
	NotificationSystem       NotificationType = "SYSTEM"
	NotificationMoodCheck    NotificationType = "MOOD_CHECK"
)

type Notification struct {
	ID        int64            `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	IsRead    bool             `json:"isRead"`
	CreatedAt Timestamp        `json:"createdAt"`
}

func (n Notification) Key() int64 { return n.ID }

// NotificationPage mirrors the paged response of the notifications list.
type NotificationPage struct {
	Content       []Notification `json:"content"`
	TotalElements int            `json:"totalElements"`
}
