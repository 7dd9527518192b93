// Package domain defines the persistence models for pets, users,
// conversations, chat messages, matches, and feedback. These types are
// mapped with GORM and form the core data layer of the matchmaking backend.
package domain

import "time"

// Pet is a pet profile eligible for matchmaking. Breed, age, and temperament
// drive compatibility scoring; records missing breed or temperament are
// silently skipped by the scorer rather than treated as errors.
type Pet struct {
	ID           int64  `json:"pet_id"        gorm:"column:pet_id;primaryKey;autoIncrement"`
	Name         string `json:"name"          gorm:"type:varchar(100);not null"`
	Breed        string `json:"breed"         gorm:"type:varchar(100)"`
	Age          int    `json:"age"`
	Gender       string `json:"gender"        gorm:"type:varchar(16)"`
	Temperament  string `json:"temperament"   gorm:"type:varchar(100)"`
	Food         string `json:"food"          gorm:"type:varchar(100)"`
	HealthStatus string `json:"health_status" gorm:"type:varchar(100)"`
	ProfilePic   string `json:"profile_pic"   gorm:"type:varchar(255)"`
}

// TableName returns the database table name for Pet.
func (Pet) TableName() string { return "pets" }

// User is an account holder. Only the messaging-settings flags are mutated
// by this backend; account lifecycle is owned by the auth service.
type User struct {
	ID                 int64     `json:"user_id"             gorm:"column:user_id;primaryKey;autoIncrement"`
	Role               string    `json:"role"                gorm:"type:varchar(16);not null;default:'user'"`
	ChatNotifications  bool      `json:"chat_notifications"  gorm:"not null;default:true"`
	EmailNotifications bool      `json:"email_notifications" gorm:"not null;default:true"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Conversation groups messages exchanged between an unordered pair of users.
// The pair is stored normalized (User1ID < User2ID) and covered by a unique
// index, which is what makes conversation creation idempotent even under
// concurrent requests for the same pair.
type Conversation struct {
	ID        int64     `json:"id"       gorm:"primaryKey;autoIncrement"`
	User1ID   int64     `json:"user1_id" gorm:"not null;uniqueIndex:ux_conversation_pair,priority:1"`
	User2ID   int64     `json:"user2_id" gorm:"not null;uniqueIndex:ux_conversation_pair,priority:2"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for Conversation.
func (Conversation) TableName() string { return "conversations" }

// Message is a single chat message within a conversation. Messages are
// immutable once created; there is no edit or delete operation.
type Message struct {
	ID             int64     `json:"id"              gorm:"primaryKey;autoIncrement"`
	SenderID       int64     `json:"sender_id"       gorm:"not null"`
	ReceiverID     int64     `json:"receiver_id"     gorm:"not null"`
	ConversationID int64     `json:"conversation_id" gorm:"not null;index:idx_conv_msgs,priority:1"`
	Content        string    `json:"content"         gorm:"type:text;not null"`
	ImageURL       *string   `json:"image_url,omitempty" gorm:"type:varchar(255)"`
	Timestamp      time.Time `json:"timestamp"       gorm:"index:idx_conv_msgs,priority:2"`

	// Conversation is the parent row. The FK rejects orphan inserts and
	// cascade-deletes messages with their conversation.
	Conversation Conversation `json:"-" gorm:"foreignKey:ConversationID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Message.
func (Message) TableName() string { return "messages" }

// Match records a confirmed pairing between two pets. This backend only
// counts matches for the reports endpoint; rows are written by the swiping
// front end.
type Match struct {
	ID        int64     `json:"id"      gorm:"primaryKey;autoIncrement"`
	Pet1ID    int64     `json:"pet1_id" gorm:"not null"`
	Pet2ID    int64     `json:"pet2_id" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for Match.
func (Match) TableName() string { return "matches" }

// Feedback is a free-form submission from the public feedback form.
// Append-only, no relationships.
type Feedback struct {
	ID        int64     `json:"id"         gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name"       gorm:"type:varchar(100);not null"`
	Email     string    `json:"email"      gorm:"type:varchar(255);not null"`
	Message   string    `json:"message"    gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for Feedback.
func (Feedback) TableName() string { return "feedback" }
