// Hand-maintained Go bindings for proto/organizer/v1/organizer.proto.
//
// The messages are kept in the struct-tag form understood by the protobuf
// runtime's legacy support, so they marshal correctly through the gRPC proto
// codec (via protoadapt) without a generated descriptor. Keep field numbers
// and names in sync with the .proto file.
package organizerv1

import (
	"fmt"
)

type Error int32

const (
	Error_OK                     Error = 0
	Error_MISSING_TENANT_NAME    Error = 1
	Error_MISSING_USER_EMAIL     Error = 2
	Error_MISSING_USER_NAME      Error = 3
	Error_INVALID_PARENT         Error = 4
	Error_DIFFERENT_PARENT       Error = 5
	Error_NOT_FOUND              Error = 6
	Error_NO_CHANGES             Error = 7
	Error_CONSTRAINT_FAILED      Error = 8
	Error_DATABASE_UPDATE_FAILED Error = 9
	Error_DATABASE_ERROR         Error = 10
	Error_GENERIC_ERROR          Error = 11
)

var Error_name = map[int32]string{
	0:  "OK",
	1:  "MISSING_TENANT_NAME",
	2:  "MISSING_USER_EMAIL",
	3:  "MISSING_USER_NAME",
	4:  "INVALID_PARENT",
	5:  "DIFFERENT_PARENT",
	6:  "NOT_FOUND",
	7:  "NO_CHANGES",
	8:  "CONSTRAINT_FAILED",
	9:  "DATABASE_UPDATE_FAILED",
	10: "DATABASE_ERROR",
	11: "GENERIC_ERROR",
}

var Error_value = map[string]int32{
	"OK":                     0,
	"MISSING_TENANT_NAME":    1,
	"MISSING_USER_EMAIL":     2,
	"MISSING_USER_NAME":      3,
	"INVALID_PARENT":         4,
	"DIFFERENT_PARENT":       5,
	"NOT_FOUND":              6,
	"NO_CHANGES":             7,
	"CONSTRAINT_FAILED":      8,
	"DATABASE_UPDATE_FAILED": 9,
	"DATABASE_ERROR":         10,
	"GENERIC_ERROR":          11,
}

func (x Error) String() string {
	if s, ok := Error_name[int32(x)]; ok {
		return s
	}
	return fmt.Sprintf("Error(%d)", int32(x))
}

type Tenant_Kind int32

const (
	Tenant_GUEST   Tenant_Kind = 0
	Tenant_REGULAR Tenant_Kind = 1
	Tenant_SUPER   Tenant_Kind = 2
)

var Tenant_Kind_name = map[int32]string{
	0: "GUEST",
	1: "REGULAR",
	2: "SUPER",
}

var Tenant_Kind_value = map[string]int32{
	"GUEST":   0,
	"REGULAR": 1,
	"SUPER":   2,
}

func (x Tenant_Kind) String() string {
	if s, ok := Tenant_Kind_name[int32(x)]; ok {
		return s
	}
	return fmt.Sprintf("Tenant_Kind(%d)", int32(x))
}

type User_Kind int32

const (
	User_REGULAR User_Kind = 0
	User_SUPER   User_Kind = 1
)

var User_Kind_name = map[int32]string{
	0: "REGULAR",
	1: "SUPER",
}

var User_Kind_value = map[string]int32{
	"REGULAR": 0,
	"SUPER":   1,
}

func (x User_Kind) String() string {
	if s, ok := User_Kind_name[int32(x)]; ok {
		return s
	}
	return fmt.Sprintf("User_Kind(%d)", int32(x))
}

type Node_Kind int32

const (
	Node_FOLDER  Node_Kind = 0
	Node_PROJECT Node_Kind = 1
	Node_ACTION  Node_Kind = 2
)

var Node_Kind_name = map[int32]string{
	0: "FOLDER",
	1: "PROJECT",
	2: "ACTION",
}

var Node_Kind_value = map[string]int32{
	"FOLDER":  0,
	"PROJECT": 1,
	"ACTION":  2,
}

func (x Node_Kind) String() string {
	if s, ok := Node_Kind_name[int32(x)]; ok {
		return s
	}
	return fmt.Sprintf("Node_Kind(%d)", int32(x))
}

type Update_Operation int32

const (
	Update_ADDED   Update_Operation = 0
	Update_UPDATED Update_Operation = 1
	Update_MOVED   Update_Operation = 2
	Update_DELETED Update_Operation = 3
)

var Update_Operation_name = map[int32]string{
	0: "ADDED",
	1: "UPDATED",
	2: "MOVED",
	3: "DELETED",
}

var Update_Operation_value = map[string]int32{
	"ADDED":   0,
	"UPDATED": 1,
	"MOVED":   2,
	"DELETED": 3,
}

func (x Update_Operation) String() string {
	if s, ok := Update_Operation_name[int32(x)]; ok {
		return s
	}
	return fmt.Sprintf("Update_Operation(%d)", int32(x))
}

type Empty struct{}

func (m *Empty) Reset()         { *m = Empty{} }
func (m *Empty) String() string { return "Empty{}" }
func (*Empty) ProtoMessage()    {}

type KeyValue struct {
	Key   string `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Value string `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *KeyValue) Reset()         { *m = KeyValue{} }
func (m *KeyValue) String() string { return fmt.Sprintf("%+v", *m) }
func (*KeyValue) ProtoMessage()    {}

func (m *KeyValue) GetKey() string {
	if m != nil {
		return m.Key
	}
	return ""
}

func (m *KeyValue) GetValue() string {
	if m != nil {
		return m.Value
	}
	return ""
}

type ServerInfo struct {
	Properties []*KeyValue `protobuf:"bytes,1,rep,name=properties,proto3" json:"properties,omitempty"`
}

func (m *ServerInfo) Reset()         { *m = ServerInfo{} }
func (m *ServerInfo) String() string { return fmt.Sprintf("%+v", *m) }
func (*ServerInfo) ProtoMessage()    {}

func (m *ServerInfo) GetProperties() []*KeyValue {
	if m != nil {
		return m.Properties
	}
	return nil
}

// Date is a calendar date. Month is zero-based (0..11) on the wire; the
// database stores one-based months. Mday is 1..31.
type Date struct {
	Year  int32 `protobuf:"varint,1,opt,name=year,proto3" json:"year,omitempty"`
	Month int32 `protobuf:"varint,2,opt,name=month,proto3" json:"month,omitempty"`
	Mday  int32 `protobuf:"varint,3,opt,name=mday,proto3" json:"mday,omitempty"`
}

func (m *Date) Reset()         { *m = Date{} }
func (m *Date) String() string { return fmt.Sprintf("%+v", *m) }
func (*Date) ProtoMessage()    {}

func (m *Date) GetYear() int32 {
	if m != nil {
		return m.Year
	}
	return 0
}

func (m *Date) GetMonth() int32 {
	if m != nil {
		return m.Month
	}
	return 0
}

func (m *Date) GetMday() int32 {
	if m != nil {
		return m.Mday
	}
	return 0
}

type DayColorDefinition struct {
	Id    string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name  string `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Color string `protobuf:"bytes,3,opt,name=color,proto3" json:"color,omitempty"`
	Score int32  `protobuf:"varint,4,opt,name=score,proto3" json:"score,omitempty"`
}

func (m *DayColorDefinition) Reset()         { *m = DayColorDefinition{} }
func (m *DayColorDefinition) String() string { return fmt.Sprintf("%+v", *m) }
func (*DayColorDefinition) ProtoMessage()    {}

func (m *DayColorDefinition) GetId() string {
	if m != nil {
		return m.Id
	}
	return ""
}

func (m *DayColorDefinition) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *DayColorDefinition) GetColor() string {
	if m != nil {
		return m.Color
	}
	return ""
}

func (m *DayColorDefinition) GetScore() int32 {
	if m != nil {
		return m.Score
	}
	return 0
}

type DayColorDefinitions struct {
	DayColors []*DayColorDefinition `protobuf:"bytes,1,rep,name=day_colors,json=dayColors,proto3" json:"day_colors,omitempty"`
}

func (m *DayColorDefinitions) Reset()         { *m = DayColorDefinitions{} }
func (m *DayColorDefinitions) String() string { return fmt.Sprintf("%+v", *m) }
func (*DayColorDefinitions) ProtoMessage()    {}

func (m *DayColorDefinitions) GetDayColors() []*DayColorDefinition {
	if m != nil {
		return m.DayColors
	}
	return nil
}

type Day struct {
	Date      *Date  `protobuf:"bytes,1,opt,name=date,proto3" json:"date,omitempty"`
	User      string `protobuf:"bytes,2,opt,name=user,proto3" json:"user,omitempty"`
	Color     string `protobuf:"bytes,3,opt,name=color,proto3" json:"color,omitempty"`
	HasNotes  bool   `protobuf:"varint,4,opt,name=has_notes,json=hasNotes,proto3" json:"has_notes,omitempty"`
	HasReport bool   `protobuf:"varint,5,opt,name=has_report,json=hasReport,proto3" json:"has_report,omitempty"`
}

func (m *Day) Reset()         { *m = Day{} }
func (m *Day) String() string { return fmt.Sprintf("%+v", *m) }
func (*Day) ProtoMessage()    {}

func (m *Day) GetDate() *Date {
	if m != nil {
		return m.Date
	}
	return nil
}

func (m *Day) GetUser() string {
	if m != nil {
		return m.User
	}
	return ""
}

func (m *Day) GetColor() string {
	if m != nil {
		return m.Color
	}
	return ""
}

func (m *Day) GetHasNotes() bool {
	if m != nil {
		return m.HasNotes
	}
	return false
}

func (m *Day) GetHasReport() bool {
	if m != nil {
		return m.HasReport
	}
	return false
}

type CompleteDay struct {
	Day    *Day   `protobuf:"bytes,1,opt,name=day,proto3" json:"day,omitempty"`
	Notes  string `protobuf:"bytes,2,opt,name=notes,proto3" json:"notes,omitempty"`
	Report string `protobuf:"bytes,3,opt,name=report,proto3" json:"report,omitempty"`
}

func (m *CompleteDay) Reset()         { *m = CompleteDay{} }
func (m *CompleteDay) String() string { return fmt.Sprintf("%+v", *m) }
func (*CompleteDay) ProtoMessage()    {}

func (m *CompleteDay) GetDay() *Day {
	if m != nil {
		return m.Day
	}
	return nil
}

func (m *CompleteDay) GetNotes() string {
	if m != nil {
		return m.Notes
	}
	return ""
}

func (m *CompleteDay) GetReport() string {
	if m != nil {
		return m.Report
	}
	return ""
}

type MonthReq struct {
	Year  int32 `protobuf:"varint,1,opt,name=year,proto3" json:"year,omitempty"`
	Month int32 `protobuf:"varint,2,opt,name=month,proto3" json:"month,omitempty"`
}

func (m *MonthReq) Reset()         { *m = MonthReq{} }
func (m *MonthReq) String() string { return fmt.Sprintf("%+v", *m) }
func (*MonthReq) ProtoMessage()    {}

func (m *MonthReq) GetYear() int32 {
	if m != nil {
		return m.Year
	}
	return 0
}

func (m *MonthReq) GetMonth() int32 {
	if m != nil {
		return m.Month
	}
	return 0
}

type Month struct {
	Year  int32  `protobuf:"varint,1,opt,name=year,proto3" json:"year,omitempty"`
	Month int32  `protobuf:"varint,2,opt,name=month,proto3" json:"month,omitempty"`
	Days  []*Day `protobuf:"bytes,3,rep,name=days,proto3" json:"days,omitempty"`
}

func (m *Month) Reset()         { *m = Month{} }
func (m *Month) String() string { return fmt.Sprintf("%+v", *m) }
func (*Month) ProtoMessage()    {}

func (m *Month) GetYear() int32 {
	if m != nil {
		return m.Year
	}
	return 0
}

func (m *Month) GetMonth() int32 {
	if m != nil {
		return m.Month
	}
	return 0
}

func (m *Month) GetDays() []*Day {
	if m != nil {
		return m.Days
	}
	return nil
}

type SetColorReq struct {
	Date  *Date  `protobuf:"bytes,1,opt,name=date,proto3" json:"date,omitempty"`
	Color string `protobuf:"bytes,2,opt,name=color,proto3" json:"color,omitempty"`
}

func (m *SetColorReq) Reset()         { *m = SetColorReq{} }
func (m *SetColorReq) String() string { return fmt.Sprintf("%+v", *m) }
func (*SetColorReq) ProtoMessage()    {}

func (m *SetColorReq) GetDate() *Date {
	if m != nil {
		return m.Date
	}
	return nil
}

func (m *SetColorReq) GetColor() string {
	if m != nil {
		return m.Color
	}
	return ""
}

type Tenant struct {
	Uuid       string      `protobuf:"bytes,1,opt,name=uuid,proto3" json:"uuid,omitempty"`
	Name       string      `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Kind       Tenant_Kind `protobuf:"varint,3,opt,name=kind,proto3,enum=organizer.v1.Tenant_Kind" json:"kind,omitempty"`
	Descr      string      `protobuf:"bytes,4,opt,name=descr,proto3" json:"descr,omitempty"`
	Active     bool        `protobuf:"varint,5,opt,name=active,proto3" json:"active,omitempty"`
	Properties []*KeyValue `protobuf:"bytes,6,rep,name=properties,proto3" json:"properties,omitempty"`
}

func (m *Tenant) Reset()         { *m = Tenant{} }
func (m *Tenant) String() string { return fmt.Sprintf("%+v", *m) }
func (*Tenant) ProtoMessage()    {}

func (m *Tenant) GetUuid() string {
	if m != nil {
		return m.Uuid
	}
	return ""
}

func (m *Tenant) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *Tenant) GetKind() Tenant_Kind {
	if m != nil {
		return m.Kind
	}
	return Tenant_GUEST
}

func (m *Tenant) GetDescr() string {
	if m != nil {
		return m.Descr
	}
	return ""
}

func (m *Tenant) GetActive() bool {
	if m != nil {
		return m.Active
	}
	return false
}

func (m *Tenant) GetProperties() []*KeyValue {
	if m != nil {
		return m.Properties
	}
	return nil
}

type User struct {
	Uuid   string    `protobuf:"bytes,1,opt,name=uuid,proto3" json:"uuid,omitempty"`
	Tenant string    `protobuf:"bytes,2,opt,name=tenant,proto3" json:"tenant,omitempty"`
	Name   string    `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Email  string    `protobuf:"bytes,4,opt,name=email,proto3" json:"email,omitempty"`
	Kind   User_Kind `protobuf:"varint,5,opt,name=kind,proto3,enum=organizer.v1.User_Kind" json:"kind,omitempty"`
	Active bool      `protobuf:"varint,6,opt,name=active,proto3" json:"active,omitempty"`
	Descr  string    `protobuf:"bytes,7,opt,name=descr,proto3" json:"descr,omitempty"`
}

func (m *User) Reset()         { *m = User{} }
func (m *User) String() string { return fmt.Sprintf("%+v", *m) }
func (*User) ProtoMessage()    {}

func (m *User) GetUuid() string {
	if m != nil {
		return m.Uuid
	}
	return ""
}

func (m *User) GetTenant() string {
	if m != nil {
		return m.Tenant
	}
	return ""
}

func (m *User) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *User) GetEmail() string {
	if m != nil {
		return m.Email
	}
	return ""
}

func (m *User) GetKind() User_Kind {
	if m != nil {
		return m.Kind
	}
	return User_REGULAR
}

func (m *User) GetActive() bool {
	if m != nil {
		return m.Active
	}
	return false
}

func (m *User) GetDescr() string {
	if m != nil {
		return m.Descr
	}
	return ""
}

type CreateTenantReq struct {
	Tenant *Tenant `protobuf:"bytes,1,opt,name=tenant,proto3" json:"tenant,omitempty"`
	Users  []*User `protobuf:"bytes,2,rep,name=users,proto3" json:"users,omitempty"`
}

func (m *CreateTenantReq) Reset()         { *m = CreateTenantReq{} }
func (m *CreateTenantReq) String() string { return fmt.Sprintf("%+v", *m) }
func (*CreateTenantReq) ProtoMessage()    {}

func (m *CreateTenantReq) GetTenant() *Tenant {
	if m != nil {
		return m.Tenant
	}
	return nil
}

func (m *CreateTenantReq) GetUsers() []*User {
	if m != nil {
		return m.Users
	}
	return nil
}

type Node struct {
	Uuid    string    `protobuf:"bytes,1,opt,name=uuid,proto3" json:"uuid,omitempty"`
	User    string    `protobuf:"bytes,2,opt,name=user,proto3" json:"user,omitempty"`
	Name    string    `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Kind    Node_Kind `protobuf:"varint,4,opt,name=kind,proto3,enum=organizer.v1.Node_Kind" json:"kind,omitempty"`
	Descr   string    `protobuf:"bytes,5,opt,name=descr,proto3" json:"descr,omitempty"`
	Active  bool      `protobuf:"varint,6,opt,name=active,proto3" json:"active,omitempty"`
	Parent  string    `protobuf:"bytes,7,opt,name=parent,proto3" json:"parent,omitempty"`
	Version int64     `protobuf:"varint,8,opt,name=version,proto3" json:"version,omitempty"`
}

func (m *Node) Reset()         { *m = Node{} }
func (m *Node) String() string { return fmt.Sprintf("%+v", *m) }
func (*Node) ProtoMessage()    {}

func (m *Node) GetUuid() string {
	if m != nil {
		return m.Uuid
	}
	return ""
}

func (m *Node) GetUser() string {
	if m != nil {
		return m.User
	}
	return ""
}

func (m *Node) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *Node) GetKind() Node_Kind {
	if m != nil {
		return m.Kind
	}
	return Node_FOLDER
}

func (m *Node) GetDescr() string {
	if m != nil {
		return m.Descr
	}
	return ""
}

func (m *Node) GetActive() bool {
	if m != nil {
		return m.Active
	}
	return false
}

func (m *Node) GetParent() string {
	if m != nil {
		return m.Parent
	}
	return ""
}

func (m *Node) GetVersion() int64 {
	if m != nil {
		return m.Version
	}
	return 0
}

type CreateNodeReq struct {
	Node *Node `protobuf:"bytes,1,opt,name=node,proto3" json:"node,omitempty"`
}

func (m *CreateNodeReq) Reset()         { *m = CreateNodeReq{} }
func (m *CreateNodeReq) String() string { return fmt.Sprintf("%+v", *m) }
func (*CreateNodeReq) ProtoMessage()    {}

func (m *CreateNodeReq) GetNode() *Node {
	if m != nil {
		return m.Node
	}
	return nil
}

type MoveNodeReq struct {
	Uuid       string `protobuf:"bytes,1,opt,name=uuid,proto3" json:"uuid,omitempty"`
	ParentUuid string `protobuf:"bytes,2,opt,name=parent_uuid,json=parentUuid,proto3" json:"parent_uuid,omitempty"`
}

func (m *MoveNodeReq) Reset()         { *m = MoveNodeReq{} }
func (m *MoveNodeReq) String() string { return fmt.Sprintf("%+v", *m) }
func (*MoveNodeReq) ProtoMessage()    {}

func (m *MoveNodeReq) GetUuid() string {
	if m != nil {
		return m.Uuid
	}
	return ""
}

func (m *MoveNodeReq) GetParentUuid() string {
	if m != nil {
		return m.ParentUuid
	}
	return ""
}

type DeleteNodeReq struct {
	Uuid string `protobuf:"bytes,1,opt,name=uuid,proto3" json:"uuid,omitempty"`
}

func (m *DeleteNodeReq) Reset()         { *m = DeleteNodeReq{} }
func (m *DeleteNodeReq) String() string { return fmt.Sprintf("%+v", *m) }
func (*DeleteNodeReq) ProtoMessage()    {}

func (m *DeleteNodeReq) GetUuid() string {
	if m != nil {
		return m.Uuid
	}
	return ""
}

type GetNodesReq struct{}

func (m *GetNodesReq) Reset()         { *m = GetNodesReq{} }
func (m *GetNodesReq) String() string { return "GetNodesReq{}" }
func (*GetNodesReq) ProtoMessage()    {}

type NodeTreeItem struct {
	Node     *Node           `protobuf:"bytes,1,opt,name=node,proto3" json:"node,omitempty"`
	Children []*NodeTreeItem `protobuf:"bytes,2,rep,name=children,proto3" json:"children,omitempty"`
}

func (m *NodeTreeItem) Reset()         { *m = NodeTreeItem{} }
func (m *NodeTreeItem) String() string { return fmt.Sprintf("%+v", *m) }
func (*NodeTreeItem) ProtoMessage()    {}

func (m *NodeTreeItem) GetNode() *Node {
	if m != nil {
		return m.Node
	}
	return nil
}

func (m *NodeTreeItem) GetChildren() []*NodeTreeItem {
	if m != nil {
		return m.Children
	}
	return nil
}

type NodeTree struct {
	Root *NodeTreeItem `protobuf:"bytes,1,opt,name=root,proto3" json:"root,omitempty"`
}

func (m *NodeTree) Reset()         { *m = NodeTree{} }
func (m *NodeTree) String() string { return fmt.Sprintf("%+v", *m) }
func (*NodeTree) ProtoMessage()    {}

func (m *NodeTree) GetRoot() *NodeTreeItem {
	if m != nil {
		return m.Root
	}
	return nil
}

type Status struct {
	Error   Error   `protobuf:"varint,1,opt,name=error,proto3,enum=organizer.v1.Error" json:"error,omitempty"`
	Message string  `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	Node    *Node   `protobuf:"bytes,3,opt,name=node,proto3" json:"node,omitempty"`
	Tenant  *Tenant `protobuf:"bytes,4,opt,name=tenant,proto3" json:"tenant,omitempty"`
}

func (m *Status) Reset()         { *m = Status{} }
func (m *Status) String() string { return fmt.Sprintf("%+v", *m) }
func (*Status) ProtoMessage()    {}

func (m *Status) GetError() Error {
	if m != nil {
		return m.Error
	}
	return Error_OK
}

func (m *Status) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

func (m *Status) GetNode() *Node {
	if m != nil {
		return m.Node
	}
	return nil
}

func (m *Status) GetTenant() *Tenant {
	if m != nil {
		return m.Tenant
	}
	return nil
}

type UpdatesReq struct{}

func (m *UpdatesReq) Reset()         { *m = UpdatesReq{} }
func (m *UpdatesReq) String() string { return "UpdatesReq{}" }
func (*UpdatesReq) ProtoMessage()    {}

// Update is a single committed mutation, fanned out to streaming subscribers.
// It carries exactly one of day_color, day or node; Op is meaningful only for
// node payloads.
type Update struct {
	When int64            `protobuf:"varint,1,opt,name=when,proto3" json:"when,omitempty"`
	Op   Update_Operation `protobuf:"varint,2,opt,name=op,proto3,enum=organizer.v1.Update_Operation" json:"op,omitempty"`
	// Types that are valid to be assigned to Payload:
	//	*Update_DayColor
	//	*Update_Day
	//	*Update_Node
	Payload isUpdate_Payload `protobuf_oneof:"payload"`
}

func (m *Update) Reset()         { *m = Update{} }
func (m *Update) String() string { return fmt.Sprintf("%+v", *m) }
func (*Update) ProtoMessage()    {}

type isUpdate_Payload interface {
	isUpdate_Payload()
}

type Update_DayColor struct {
	DayColor *Day `protobuf:"bytes,10,opt,name=day_color,json=dayColor,proto3,oneof"`
}

type Update_Day struct {
	Day *CompleteDay `protobuf:"bytes,11,opt,name=day,proto3,oneof"`
}

type Update_Node struct {
	Node *Node `protobuf:"bytes,12,opt,name=node,proto3,oneof"`
}

func (*Update_DayColor) isUpdate_Payload() {}
func (*Update_Day) isUpdate_Payload()      {}
func (*Update_Node) isUpdate_Payload()     {}

func (m *Update) GetWhen() int64 {
	if m != nil {
		return m.When
	}
	return 0
}

func (m *Update) GetOp() Update_Operation {
	if m != nil {
		return m.Op
	}
	return Update_ADDED
}

func (m *Update) GetPayload() isUpdate_Payload {
	if m != nil {
		return m.Payload
	}
	return nil
}

func (m *Update) GetDayColor() *Day {
	if x, ok := m.GetPayload().(*Update_DayColor); ok {
		return x.DayColor
	}
	return nil
}

func (m *Update) GetDay() *CompleteDay {
	if x, ok := m.GetPayload().(*Update_Day); ok {
		return x.Day
	}
	return nil
}

func (m *Update) GetNode() *Node {
	if x, ok := m.GetPayload().(*Update_Node); ok {
		return x.Node
	}
	return nil
}

// XXX_OneofWrappers is required by the protobuf runtime to resolve the
// payload oneof.
func (*Update) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*Update_DayColor)(nil),
		(*Update_Day)(nil),
		(*Update_Node)(nil),
	}
}
