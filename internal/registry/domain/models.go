package domain

import "time"

// Object and client types are fixed by the central server schema.
const (
	ObjectTypeMember    = "MEMBER"
	ObjectTypeSubsystem = "SUBSYSTEM"

	ClientTypeMember    = "XRoadMember"
	ClientTypeSubsystem = "Subsystem"

	IdentifierTypeClientID = "ClientId"

	InstanceIdentifierKey = "instanceIdentifier"
)

// MemberClass is a pre-seeded lookup row; read-only to this service.
type MemberClass struct {
	ID   int64  `gorm:"primaryKey"`
	Code string `gorm:"not null;uniqueIndex"`
}

func (MemberClass) TableName() string { return "member_classes" }

// Identifier is the federation-wide identity reference created once per
// provisioning call.
type Identifier struct {
	ID            int64  `gorm:"primaryKey"`
	ObjectType    string `gorm:"not null"`
	XRoadInstance string `gorm:"column:xroad_instance"`
	MemberClass   string
	MemberCode    string
	SubsystemCode *string
	Type          string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Identifier) TableName() string { return "identifiers" }

// Client is the registered member or subsystem row. Member rows carry name
// and member_class_id; subsystem rows carry subsystem_code and the parent
// member id.
type Client struct {
	ID             int64 `gorm:"primaryKey"`
	MemberCode     *string
	SubsystemCode  *string
	Name           *string
	MemberClassID  *int64
	XRoadMemberID  *int64 `gorm:"column:xroad_member_id"`
	ServerClientID int64  `gorm:"column:server_client_id"`
	Type           string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Client) TableName() string { return "security_server_clients" }

// ClientName is the denormalized display-name row, one per provisioning call.
type ClientName struct {
	ID                 int64 `gorm:"primaryKey"`
	Name               string
	ClientIdentifierID int64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (ClientName) TableName() string { return "security_server_client_names" }

// SystemParameter holds global configuration such as the instance identifier.
type SystemParameter struct {
	ID    int64  `gorm:"primaryKey"`
	Key   string `gorm:"column:key"`
	Value string
}

func (SystemParameter) TableName() string { return "system_parameters" }

// MemberData is the projection of a parent member used when provisioning a
// subsystem.
type MemberData struct {
	ID   int64
	Name string
}
