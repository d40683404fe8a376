/*
Package ruledef converts a textual grammar description to a grammar.Catalog structure.

A description is a line-oriented text. Blank lines and lines whose first
non-blank character is # are ignored. Every other line is a directive:
the first whitespace-delimited field is a one-letter command, the second
field is a mode or rule identifier, and the rest of the line is the
payload.
*/
//  m <mode> .                 declare mode <mode>, or reopen it to append directives
//  i <mode> .                 include mode <mode> at this point
//  d <name> .                 delete rule <name> from the current mode
//  l <name> <literal>         literal rule, payload runs to end of line
//  r <name> <regexp>          regular expression rule, payload runs to end of line
//  c <name> <regexp> <kw...>  code rule: match regexp, classify span against keywords
//  s <name> -                 symbolic rule, never matches text
//  x <name> .                 strip: mark <name> as dropped in every mode
/*
The trailing . and - payloads are literal and are validated. Every
directive except m must appear after some m line; a rule directive with
no current mode is a structural error.

A mode declared twice is the same mode: the second m line reopens it and
further directives append to its list. Within one mode an identifier may
be declared any number of times with one kind; declaring it again with a
different kind is an error.

Modes are resolved eagerly when the description is loaded. Each mode's
directives are replayed in order into an effective rule list:

  - a rule directive appends its rule; if the identifier is already
    present in the list the new declaration replaces the old one in
    place, keeping the position of the first occurrence;
  - i splices the included mode's own effective list at that point,
    entry by entry, under the same replace-in-place law; including a
    mode that directly or indirectly includes the current one is an
    error, as is including an undeclared mode;
  - d removes the identifier from the current mode's list; deleting an
    absent identifier is a no-op, and a later declaration re-adds the
    rule at the tail.

Longest-match ties in the lexer are broken by list position, so the
replay order of a mode decides rule priority: put specific rules before
the include that carries the general ones, or re-declare after the
include to shadow a general rule in place.

Regular expressions use RE2 syntax and are matched with multi-line
semantics: ^ anchors to a line start of the whole input and $ to a line
end, never to the position a match attempt begins at. A pattern with a
leading ^ matches only when the attempt position itself sits at a line
start. Capturing groups are not used; the engine only looks at the
whole matched span.

A code rule's payload is split on whitespace: the first field is the
pattern the rule matches with, the remaining fields are keywords. When a
matched span is byte-equal to one of the keywords the token carries the
reserved sub-kind.

The x directive does not remove rules: it marks the identifier as
dropped in the catalog, and token streams consume such tokens silently.
Stripping an identifier that no mode declares is an error.

Loading is deterministic: the same description always yields the same
catalog, and a catalog is never modified after Load returns.
*/
package ruledef
