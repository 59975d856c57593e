package cli

import (
	"context"
	"fmt"
	"io"

	. "github.com/MingxuanGame/SayobotAPI/model"
)

// Info looks up a beatmapset and prints its difficulties. matchMode < 0 leaves
// the match mode unset.
func Info(ctx context.Context, w io.Writer, key string, matchMode int) error {
	client, config, err := newClient()
	if err != nil {
		return err
	}
	request := client.BeatmapInfo().SetKey(key)
	if matchMode >= 0 {
		request.SetMatchMode(matchMode)
	}
	if config.Sayobot.InfoTimeout > 0 {
		request.SetTimeout(Seconds(config.Sayobot.InfoTimeout))
	}
	response, err := request.Do(ctx)
	if err != nil {
		return err
	}
	if response.Status != 0 {
		return fmt.Errorf("beatmap %s not found (status %d)", key, response.Status)
	}
	printBeatmapset(w, &response.Data)
	return nil
}

func printBeatmapset(w io.Writer, set *BeatmapsetInfo) {
	_, _ = fmt.Fprintf(w, "%d %s - %s (%s)\n", set.BeatmapsetId, set.Artist, set.Title, set.Creator)
	_, _ = fmt.Fprintf(w, "BPM: %g  Approved: %d  Favourites: %d\n", set.BPM, set.Approved, set.FavouriteCount)
	for _, b := range set.Beatmaps {
		_, _ = fmt.Fprintf(w, "  [%d] %s  %.2f*  AR%g OD%g CS%g HP%g  %.0fpp\n",
			b.BeatmapId, b.Version, b.Star, b.AR, b.OD, b.CS, b.HP, b.PP)
	}
}
