// Package separation generates gravity (spiral concentrator) and magnetic
// separation records from a bootstrapped ore feed.
//
// Spiral efficiency peaks at 200 rpm and rises with feed grade; the
// magnetic stage is penalized 10% for oxide ores and scales with field
// intensity. Concentrate grades are upgraded from the feed grade and
// clipped against circuit ceilings (48% after spirals, 50% after the
// magnetic stage); when a feed grade already exceeds the ceiling the clip
// collapses to the ceiling — a documented accuracy limitation that is
// deliberately preserved.
//
// Timestamps advance at a fixed 2-hour stride from dataset.Epoch.
package separation
