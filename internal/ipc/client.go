package ipc

import (
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"
)

// Client provides RPC access to the daemon.
type Client struct {
	conn   net.Conn
	client *rpc.Client
}

// Dial connects to the IPC server at the given socket path.
func Dial(path string) (*Client, error) {
	conn, err := net.DialTimeout("unix", path, 2*time.Second)
	if err != nil {
		return nil, err
	}
	rpcClient := rpc.NewClientWithCodec(jsonrpc.NewClientCodec(conn))
	return &Client{conn: conn, client: rpcClient}, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	if c.client != nil {
		_ = c.client.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// Ping checks daemon liveness.
func (c *Client) Ping() (*PingResponse, error) {
	var resp PingResponse
	if err := c.client.Call("Reel.Ping", PingRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Stop requests the daemon to shut down.
func (c *Client) Stop() (*StopResponse, error) {
	var resp StopResponse
	if err := c.client.Call("Reel.Stop", StopRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Status retrieves the daemon status.
func (c *Client) Status() (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.client.Call("Reel.Status", StatusRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// FactList returns facts, optionally filtered by category.
func (c *Client) FactList(category string) (*FactListResponse, error) {
	var resp FactListResponse
	if err := c.client.Call("Reel.FactList", FactListRequest{Category: category}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// FactCreate appends one manually supplied fact.
func (c *Client) FactCreate(content, category string) (*FactCreateResponse, error) {
	var resp FactCreateResponse
	req := FactCreateRequest{Content: content, Category: category}
	if err := c.client.Call("Reel.FactCreate", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// FactGenerate draws facts from the curated pools.
func (c *Client) FactGenerate(count int, categories []string) (*FactGenerateResponse, error) {
	var resp FactGenerateResponse
	req := FactGenerateRequest{Count: count, Categories: categories}
	if err := c.client.Call("Reel.FactGenerate", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ScriptList returns all scripts.
func (c *Client) ScriptList() (*ScriptListResponse, error) {
	var resp ScriptListResponse
	if err := c.client.Call("Reel.ScriptList", ScriptListRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ScriptGenerate scripts a batch of facts.
func (c *Client) ScriptGenerate(req ScriptGenerateRequest) (*ScriptGenerateResponse, error) {
	var resp ScriptGenerateResponse
	if err := c.client.Call("Reel.ScriptGenerate", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VideoList returns videos, optionally filtered by status.
func (c *Client) VideoList(status string) (*VideoListResponse, error) {
	var resp VideoListResponse
	if err := c.client.Call("Reel.VideoList", VideoListRequest{Status: status}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VideoAssemble renders a batch of scripts.
func (c *Client) VideoAssemble(req VideoAssembleRequest) (*VideoAssembleResponse, error) {
	var resp VideoAssembleResponse
	if err := c.client.Call("Reel.VideoAssemble", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Publish publishes a batch of videos.
func (c *Client) Publish(req PublishRequest) (*PublishResponse, error) {
	var resp PublishResponse
	if err := c.client.Call("Reel.Publish", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PublishedList returns publish records.
func (c *Client) PublishedList() (*PublishedListResponse, error) {
	var resp PublishedListResponse
	if err := c.client.Call("Reel.PublishedList", PublishedListRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PipelineRun drives a full fact-to-published run.
func (c *Client) PipelineRun(req PipelineRunRequest) (*PipelineRunResponse, error) {
	var resp PipelineRunResponse
	if err := c.client.Call("Reel.PipelineRun", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DatabaseHealth retrieves detailed catalog diagnostics.
func (c *Client) DatabaseHealth() (*DatabaseHealthResponse, error) {
	var resp DatabaseHealthResponse
	if err := c.client.Call("Reel.DatabaseHealth", DatabaseHealthRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TestNotification triggers a notification test via the daemon.
func (c *Client) TestNotification() (*TestNotificationResponse, error) {
	var resp TestNotificationResponse
	if err := c.client.Call("Reel.TestNotification", TestNotificationRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
