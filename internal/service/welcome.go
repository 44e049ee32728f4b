package service

// Default note seeded for every new account. Opaque content, not business
// logic; only "a non-empty note exists after signup" matters to callers.
const (
	DefaultNoteTitle = "Welcome to Notes Studio"

	DefaultNoteContent = `Welcome to Notes Studio!

Your account comes with this starter note so you can try things out right away.

A few things you can do:
- Create a new note with the "New note" button.
- Edit a note; your changes are saved with a fresh timestamp and the note moves to the top of your list.
- Delete notes you no longer need.

Everything you write here is private to your account: notes are only ever visible to their owner, and every request is authenticated with a short-lived bearer token.

Happy writing!`
)
