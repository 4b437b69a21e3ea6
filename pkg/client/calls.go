package client

import (
	"context"

	orgpb "github.com/dayward/organizer/gen/go/organizer/v1"
)

func (c *Client) GetServerInfo(ctx context.Context) (*orgpb.ServerInfo, error) {
	api, err := c.live()
	if err != nil {
		return nil, err
	}
	return api.GetServerInfo(c.withIdentity(ctx), &orgpb.Empty{})
}

func (c *Client) GetDayColorDefinitions(ctx context.Context) (*orgpb.DayColorDefinitions, error) {
	api, err := c.live()
	if err != nil {
		return nil, err
	}
	return api.GetDayColorDefinitions(c.withIdentity(ctx), &orgpb.Empty{})
}

func (c *Client) GetDay(ctx context.Context, date *orgpb.Date) (*orgpb.CompleteDay, error) {
	api, err := c.live()
	if err != nil {
		return nil, err
	}
	return api.GetDay(c.withIdentity(ctx), date)
}

func (c *Client) GetMonth(ctx context.Context, year, month int32) (*orgpb.Month, error) {
	api, err := c.live()
	if err != nil {
		return nil, err
	}
	return api.GetMonth(c.withIdentity(ctx), &orgpb.MonthReq{Year: year, Month: month})
}

func (c *Client) SetColorOnDay(ctx context.Context, date *orgpb.Date, color string) (*orgpb.Status, error) {
	api, err := c.live()
	if err != nil {
		return nil, err
	}
	return api.SetColorOnDay(c.withIdentity(ctx), &orgpb.SetColorReq{Date: date, Color: color})
}

func (c *Client) SetDay(ctx context.Context, day *orgpb.CompleteDay) (*orgpb.Status, error) {
	api, err := c.live()
	if err != nil {
		return nil, err
	}
	return api.SetDay(c.withIdentity(ctx), day)
}

func (c *Client) CreateTenant(ctx context.Context, req *orgpb.CreateTenantReq) (*orgpb.Status, error) {
	api, err := c.live()
	if err != nil {
		return nil, err
	}
	return api.CreateTenant(c.withIdentity(ctx), req)
}

func (c *Client) CreateNode(ctx context.Context, node *orgpb.Node) (*orgpb.Status, error) {
	api, err := c.live()
	if err != nil {
		return nil, err
	}
	return api.CreateNode(c.withIdentity(ctx), &orgpb.CreateNodeReq{Node: node})
}

func (c *Client) UpdateNode(ctx context.Context, node *orgpb.Node) (*orgpb.Status, error) {
	api, err := c.live()
	if err != nil {
		return nil, err
	}
	return api.UpdateNode(c.withIdentity(ctx), node)
}

func (c *Client) MoveNode(ctx context.Context, id, parent string) (*orgpb.Status, error) {
	api, err := c.live()
	if err != nil {
		return nil, err
	}
	return api.MoveNode(c.withIdentity(ctx), &orgpb.MoveNodeReq{Uuid: id, ParentUuid: parent})
}

func (c *Client) DeleteNode(ctx context.Context, id string) (*orgpb.Status, error) {
	api, err := c.live()
	if err != nil {
		return nil, err
	}
	return api.DeleteNode(c.withIdentity(ctx), &orgpb.DeleteNodeReq{Uuid: id})
}

func (c *Client) GetNodes(ctx context.Context) (*orgpb.NodeTree, error) {
	api, err := c.live()
	if err != nil {
		return nil, err
	}
	return api.GetNodes(c.withIdentity(ctx), &orgpb.GetNodesReq{})
}

// SubscribeToUpdates opens the update stream and pumps it onto the returned
// channel. The channel closes when the stream ends; cancel ctx to stop.
func (c *Client) SubscribeToUpdates(ctx context.Context) (<-chan *orgpb.Update, error) {
	api, err := c.live()
	if err != nil {
		return nil, err
	}
	stream, err := api.SubscribeToUpdates(c.withIdentity(ctx), &orgpb.UpdatesReq{})
	if err != nil {
		return nil, err
	}

	out := make(chan *orgpb.Update)
	go func() {
		defer close(out)
		for {
			u, err := stream.Recv()
			if err != nil {
				return
			}
			select {
			case out <- u:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
