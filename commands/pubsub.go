package commands

import "github.com/summerlight/redis-resp-go"

// Publish returns a PUBLISH command, sending message to channel.
// ClusterKey aliases channel, so routing layers can shard PUBLISH the
// same way as any other keyed command.
func Publish(channel, message []byte) (resp.Command, error) {
	return resp.NewSingleKeyCommand("PUBLISH", channel, resp.BulkValue(message))
}

// Subscribe returns a SUBSCRIBE command for one or more channels. It is
// a subscriber command: issuing it moves a Session into subscriber
// mode.
func Subscribe(channels ...[]byte) (resp.Command, error) {
	if err := resp.RequireNonEmptySeq("SUBSCRIBE", "channel list", len(channels)); err != nil {
		return nil, err
	}
	args := make([]resp.Value, len(channels))
	for i, ch := range channels {
		args[i] = resp.BulkValue(ch)
	}
	return resp.NewSubscriberCommand("SUBSCRIBE", args...), nil
}

// PSubscribe returns a PSUBSCRIBE command for one or more glob
// patterns. Like Subscribe, it is a subscriber command.
func PSubscribe(patterns ...[]byte) (resp.Command, error) {
	if err := resp.RequireNonEmptySeq("PSUBSCRIBE", "pattern list", len(patterns)); err != nil {
		return nil, err
	}
	args := make([]resp.Value, len(patterns))
	for i, p := range patterns {
		args[i] = resp.BulkValue(p)
	}
	return resp.NewSubscriberCommand("PSUBSCRIBE", args...), nil
}
