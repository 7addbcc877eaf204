// Package boardmap defines the Lambda Punter board: sites, rivers, mines,
// the Setup a punter receives at the start of a game, and the Move variants
// a punter or an opponent can play.
//
// A River is stored canonically (smaller SiteId first) so that River(a,b)
// and River(b,a) compare equal and hash identically. ClaimedRivers tracks,
// per river, an ownership bitmask rather than a single owner id: bit p is
// set iff punter p holds that river. This lets the Option rule (a river
// co-owned by two punters) be represented without a second "also owned by"
// map — absence of a river from the index simply means it is unclaimed.
package boardmap
