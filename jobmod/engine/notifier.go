package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// SlackNotifier posts flagged verification outcomes to a slack channel via
// "incoming webhook". The webhook must already be configured in the slack
// workplace.
type SlackNotifier struct {
	SlackWebhookURL string
	// optional; defaults to http.DefaultClient
	Client *http.Client
}

var _ Notifier = (*SlackNotifier)(nil)

type SlackWebhookBody struct {
	Text string `json:"text"`
}

func (n *SlackNotifier) SendFlagged(ctx context.Context, sub JobSubmission, res *VerificationResult) error {
	msg := fmt.Sprintf("⚠️ Job Submission Flagged ⚠️\n`company=%s` `riskScore=%d`\n", sub.CompanyID, res.RiskScore)
	msg += fmt.Sprintf("*%s*\n", sub.Title)
	for _, flag := range res.Flags {
		msg += fmt.Sprintf("• %s\n", flag)
	}
	return n.sendSlackMsg(ctx, msg)
}

func (n *SlackNotifier) sendSlackMsg(ctx context.Context, msg string) error {
	body, err := json.Marshal(SlackWebhookBody{Text: msg})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.SlackWebhookURL, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Add("Content-Type", "application/json")
	client := n.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	buf := new(bytes.Buffer)
	buf.ReadFrom(resp.Body)
	if resp.StatusCode != 200 || buf.String() != "ok" {
		return fmt.Errorf("failed slack webhook POST request. status=%d", resp.StatusCode)
	}
	return nil
}
