// Package grpcmarshaller converts between the organizer domain types and
// their protobuf wire form. The month off-by-one lives here and nowhere
// else: wire months are 0..11, domain and database months are 1..12.
package grpcmarshaller

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	orgpb "github.com/dayward/organizer/gen/go/organizer/v1"
	"github.com/dayward/organizer/internal/domain/model"
)

func DateToPB(d model.Date) *orgpb.Date {
	return &orgpb.Date{
		Year:  int32(d.Year),
		Month: int32(d.Month - 1),
		Mday:  int32(d.Mday),
	}
}

func DateFromPB(d *orgpb.Date) (model.Date, error) {
	if d == nil {
		return model.Date{}, fmt.Errorf("missing date")
	}
	date := model.Date{
		Year:  int(d.GetYear()),
		Month: int(d.GetMonth()) + 1,
		Mday:  int(d.GetMday()),
	}
	if !date.Valid() {
		return model.Date{}, fmt.Errorf("invalid date %d-%d-%d", d.GetYear(), d.GetMonth(), d.GetMday())
	}
	return date, nil
}

func NodeToPB(n model.Node) *orgpb.Node {
	pb := &orgpb.Node{
		Uuid:    n.ID.String(),
		User:    n.User.String(),
		Name:    n.Name,
		Kind:    orgpb.Node_Kind(n.Kind),
		Descr:   n.Descr,
		Active:  n.Active,
		Version: n.Version,
	}
	if n.Parent != nil {
		pb.Parent = n.Parent.String()
	}
	return pb
}

// NodeFromPB maps a wire node onto the domain. An empty uuid is allowed
// (CreateNode generates one); an empty parent means root.
func NodeFromPB(pb *orgpb.Node) (model.Node, error) {
	if pb == nil {
		return model.Node{}, fmt.Errorf("missing node")
	}
	n := model.Node{
		Name:    pb.GetName(),
		Kind:    model.NodeKind(pb.GetKind()),
		Descr:   pb.GetDescr(),
		Active:  pb.GetActive(),
		Version: pb.GetVersion(),
	}
	var err error
	if pb.GetUuid() != "" {
		if n.ID, err = uuid.Parse(pb.GetUuid()); err != nil {
			return model.Node{}, fmt.Errorf("bad node uuid %q: %w", pb.GetUuid(), err)
		}
	}
	if pb.GetUser() != "" {
		if n.User, err = uuid.Parse(pb.GetUser()); err != nil {
			return model.Node{}, fmt.Errorf("bad node user %q: %w", pb.GetUser(), err)
		}
	}
	if pb.GetParent() != "" {
		p, err := uuid.Parse(pb.GetParent())
		if err != nil {
			return model.Node{}, fmt.Errorf("bad node parent %q: %w", pb.GetParent(), err)
		}
		n.Parent = &p
	}
	return n, nil
}

func DaySummaryToPB(d model.DaySummary) *orgpb.Day {
	return &orgpb.Day{
		Date:      DateToPB(d.Date),
		User:      d.User.String(),
		Color:     d.Color,
		HasNotes:  d.HasNotes,
		HasReport: d.HasReport,
	}
}

func CompleteDayToPB(d model.Day) *orgpb.CompleteDay {
	return &orgpb.CompleteDay{
		Day: &orgpb.Day{
			Date:      DateToPB(d.Date),
			User:      d.User.String(),
			Color:     d.Color,
			HasNotes:  d.Notes != "",
			HasReport: d.Report != "",
		},
		Notes:  d.Notes,
		Report: d.Report,
	}
}

func CompleteDayFromPB(pb *orgpb.CompleteDay) (model.Day, error) {
	if pb.GetDay() == nil {
		return model.Day{}, fmt.Errorf("missing day")
	}
	date, err := DateFromPB(pb.GetDay().GetDate())
	if err != nil {
		return model.Day{}, err
	}
	day := model.Day{
		Date:   date,
		Color:  pb.GetDay().GetColor(),
		Notes:  pb.GetNotes(),
		Report: pb.GetReport(),
	}
	if pb.GetDay().GetUser() != "" {
		if day.User, err = uuid.Parse(pb.GetDay().GetUser()); err != nil {
			return model.Day{}, fmt.Errorf("bad day user %q: %w", pb.GetDay().GetUser(), err)
		}
	}
	return day, nil
}

func DayColorToPB(dc model.DayColor) *orgpb.DayColorDefinition {
	return &orgpb.DayColorDefinition{
		Id:    dc.ID.String(),
		Name:  dc.Name,
		Color: dc.Color,
		Score: int32(dc.Score),
	}
}

func TenantToPB(t model.Tenant) *orgpb.Tenant {
	pb := &orgpb.Tenant{
		Uuid:   t.ID.String(),
		Name:   t.Name,
		Kind:   orgpb.Tenant_Kind(t.Kind),
		Descr:  t.Descr,
		Active: t.Active,
	}
	for k, v := range t.Properties {
		pb.Properties = append(pb.Properties, &orgpb.KeyValue{Key: k, Value: v})
	}
	return pb
}

func TenantFromPB(pb *orgpb.Tenant) (model.Tenant, error) {
	if pb == nil {
		return model.Tenant{}, fmt.Errorf("missing tenant")
	}
	t := model.Tenant{
		Name:   pb.GetName(),
		Kind:   model.TenantKind(pb.GetKind()),
		Descr:  pb.GetDescr(),
		Active: pb.GetActive(),
	}
	var err error
	if pb.GetUuid() != "" {
		if t.ID, err = uuid.Parse(pb.GetUuid()); err != nil {
			return model.Tenant{}, fmt.Errorf("bad tenant uuid %q: %w", pb.GetUuid(), err)
		}
	}
	if len(pb.GetProperties()) > 0 {
		t.Properties = make(map[string]string, len(pb.GetProperties()))
		for _, kv := range pb.GetProperties() {
			t.Properties[kv.GetKey()] = kv.GetValue()
		}
	}
	return t, nil
}

func UserFromPB(pb *orgpb.User) (model.User, error) {
	if pb == nil {
		return model.User{}, fmt.Errorf("missing user")
	}
	u := model.User{
		Name:   pb.GetName(),
		Email:  pb.GetEmail(),
		Kind:   model.UserKind(pb.GetKind()),
		Active: pb.GetActive(),
		Descr:  pb.GetDescr(),
	}
	var err error
	if pb.GetUuid() != "" {
		if u.ID, err = uuid.Parse(pb.GetUuid()); err != nil {
			return model.User{}, fmt.Errorf("bad user uuid %q: %w", pb.GetUuid(), err)
		}
	}
	if pb.GetTenant() != "" {
		if u.Tenant, err = uuid.Parse(pb.GetTenant()); err != nil {
			return model.User{}, fmt.Errorf("bad user tenant %q: %w", pb.GetTenant(), err)
		}
	}
	return u, nil
}

// NodeUpdate builds the fan-out message for a node mutation.
func NodeUpdate(op orgpb.Update_Operation, n model.Node) *orgpb.Update {
	return &orgpb.Update{
		When:    time.Now().UnixMilli(),
		Op:      op,
		Payload: &orgpb.Update_Node{Node: NodeToPB(n)},
	}
}

// DayColorUpdate builds the fan-out message for SetColorOnDay.
func DayColorUpdate(user uuid.UUID, date model.Date, color string) *orgpb.Update {
	return &orgpb.Update{
		When: time.Now().UnixMilli(),
		Payload: &orgpb.Update_DayColor{
			DayColor: &orgpb.Day{
				Date:  DateToPB(date),
				User:  user.String(),
				Color: color,
			},
		},
	}
}

// DayUpdate builds the fan-out message for SetDay.
func DayUpdate(day model.Day) *orgpb.Update {
	return &orgpb.Update{
		When:    time.Now().UnixMilli(),
		Payload: &orgpb.Update_Day{Day: CompleteDayToPB(day)},
	}
}
