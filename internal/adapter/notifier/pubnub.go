package notifier

import (
	"context"
	"fmt"

	pubnub "github.com/pubnub/go/v7"

	"venuegate/internal/core/domain"
)

// PubNubNotifier publishes crowd level transitions to a per-venue channel so
// subscribed clients can flip their three-color signal without polling.
type PubNubNotifier struct {
	pn *pubnub.PubNub
}

func NewPubNubNotifier(publishKey, subscribeKey, userID string) *PubNubNotifier {
	cfg := pubnub.NewConfigWithUserId(pubnub.UserId(userID))
	cfg.PublishKey = publishKey
	cfg.SubscribeKey = subscribeKey

	return &PubNubNotifier{pn: pubnub.NewPubNub(cfg)}
}

func (n *PubNubNotifier) PublishCrowdTransition(ctx context.Context, t domain.CrowdTransition) error {
	channel := fmt.Sprintf("venue-crowd-%s", t.VenueID)

	_, _, err := n.pn.Publish().
		Channel(channel).
		Message(map[string]any{
			"type":     "crowd_level",
			"venue_id": t.VenueID.String(),
			"from":     string(t.From),
			"to":       string(t.To),
			"current":  t.Current,
			"maximum":  t.Maximum,
			"at":       t.At.Unix(),
		}).
		Execute()

	return err
}

// NoopNotifier drops transitions. Used when no PubNub keys are configured.
type NoopNotifier struct{}

func (NoopNotifier) PublishCrowdTransition(ctx context.Context, t domain.CrowdTransition) error {
	return nil
}
