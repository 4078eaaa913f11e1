package censor

const thoughtcrimeMessage = `Dear citizen,

You have been caught using forbidden words. Your record has been forwarded
for re-education.

Your transgressions:

`

const rightspeakMessage = `Dear citizen,

Some of the words you used are outdated. Please use the approved
replacements listed below from now on.

Suggested replacements:

`

const mixspeakMessage = `Dear citizen,

You have used forbidden words as well as outdated ones. Your record has
been forwarded for re-education. Until then, adopt the replacements below.

Your transgressions, followed by the suggested replacements:

`
