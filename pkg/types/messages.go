package types

// Client -> Server
// add-player:
//   name: string
//
// pick-player:
//   player_id: number // 0-based roster position
//
// add-character:
//   character_id: number // catalog id
//
// Disconnect has no message; closing the socket releases the client's player.

// Server -> Client
// rebuild-players:
//   html: string // full replacement fragment for the roster area
//
// rebuild-characters:
//   html: string // full replacement fragment for the catalog area
//
// error:
//   error: string // only for malformed/unknown messages; rejected game
//                 // actions (no player selected, already claimed) are
//                 // logged server-side and produce no reply
