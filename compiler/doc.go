// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

/*
Package compiler translates shorthand assembly into Nios II assembly source.

A program has one compile block, holding constants, one main block, and any
number of functions:

	compile:
	    const limit = 10
	main:
	    r1 = 0
	    while r1 < r2:
	        r1++
	    end
	    call done
	end
	func done:
	    r2 = &result
	    *r2 = r1
	end
	int result

Source is split into lines, and each line into tokens. Statements are
recognized by a Handler: the dispatcher offers a growing candidate of
tokens to each handler in priority order, and the first handler to match
parses the statement. The generator then lowers the statements into an
ir tree, and the Listing emits it as text.

Failures are *Error values carrying a Code, wrapped in ErrSyntax with the
offending source line.
*/
package compiler
