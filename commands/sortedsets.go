package commands

import "github.com/summerlight/redis-resp-go"

// ScoreMember is one (score, member) pair of a ZADD call.
type ScoreMember struct {
	Score  int64
	Member []byte
}

// ZAdd returns a ZADD command, adding every (score, member) pair in
// pairs to the sorted set at key in a single round trip.
func ZAdd(key []byte, pairs ...ScoreMember) (resp.Command, error) {
	if err := resp.RequireNonEmptySeq("ZADD", "score/member list", len(pairs)); err != nil {
		return nil, err
	}
	args := make([]resp.Value, 0, 2*len(pairs))
	for _, p := range pairs {
		args = append(args, resp.Int(p.Score), resp.BulkValue(p.Member))
	}
	return resp.NewSingleKeyCommand("ZADD", key, args...)
}

// ZRange returns a ZRANGE command over the index range [start, stop],
// optionally including scores alongside each member.
func ZRange(key []byte, start, stop int64, withScores bool) (resp.Command, error) {
	return resp.NewSingleKeyCommand(
		"ZRANGE", key,
		resp.Int(start), resp.Int(stop),
		resp.Optional(withScores, resp.Str("WITHSCORES")),
	)
}

// ZRangeByScore returns a ZRANGEBYSCORE command over the score interval
// [min, max], optionally including scores and/or paginating with a
// LIMIT offset/count group.
func ZRangeByScore(key []byte, min, max resp.IntervalValue, withScores bool, limit bool, offset, count int64) (resp.Command, error) {
	return resp.NewSingleKeyCommand(
		"ZRANGEBYSCORE", key,
		min, max,
		resp.Optional(withScores, resp.Str("WITHSCORES")),
		resp.Optional(limit, resp.Str("LIMIT"), resp.Int(offset), resp.Int(count)),
	)
}

// ZRemRangeByScore returns a ZREMRANGEBYSCORE command, removing every
// member of the sorted set at key whose score falls within [min, max].
func ZRemRangeByScore(key []byte, min, max resp.IntervalValue) (resp.Command, error) {
	return resp.NewSingleKeyCommand("ZREMRANGEBYSCORE", key, min, max)
}
