package fixture

import (
	"fmt"

	"github.com/hibou-project/hibou/internal/signature"
	"github.com/hibou-project/hibou/internal/term"
)

// termParser builds a *term.Term from a single expression of the
// fixture grammar, interning lifeline/message names into sig as it
// encounters them. One parser instance is used per expression.
type termParser struct {
	lex *lexer
	tok token
	sig *signature.Signature
}

func newTermParser(src string, sig *signature.Signature) (*termParser, error) {
	p := &termParser{lex: newLexer(src), sig: sig}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *termParser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *termParser) expect(k tokenKind, what string) (token, error) {
	if p.tok.kind != k {
		return token{}, fmt.Errorf("fixture: expected %s, got %q", what, p.tok.text)
	}
	t := p.tok
	if err := p.advance(); err != nil {
		return token{}, err
	}
	return t, nil
}

// ParseTerm parses src as a complete interaction-term expression and
// checks that the whole expression was consumed.
func ParseTerm(src string, sig *signature.Signature) (*term.Term, error) {
	p, err := newTermParser(src, sig)
	if err != nil {
		return nil, err
	}
	t, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, fmt.Errorf("fixture: trailing input after term: %q", p.tok.text)
	}
	return t, nil
}

var binaryOps = map[string]term.ScheduleOp{
	"strict": term.OpStrict,
	"seq":    term.OpSeq,
	"par":    term.OpPar,
}

var loopOps = map[string]term.ScheduleOp{
	"loop_strict": term.OpStrict,
	"loop_seq":    term.OpSeq,
	"loop_par":    term.OpPar,
}

func (p *termParser) parseTerm() (*term.Term, error) {
	if p.tok.kind != tokIdent {
		return nil, fmt.Errorf("fixture: expected a term, got %q", p.tok.text)
	}
	name := p.tok.text

	if name == "empty" {
		if err := p.advance(); err != nil {
			return nil, err
		}
		return term.Empty, nil
	}

	op, isBinary := binaryOps[name]
	isAlt := name == "alt"
	if isBinary || isAlt {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if _, err := p.expect(tokLParen, "'('"); err != nil {
			return nil, err
		}
		left, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokComma, "','"); err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		if isAlt {
			return term.NewAlt(left, right), nil
		}
		return term.NewScheduled(op, left, right), nil
	}

	if op, ok := loopOps[name]; ok {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if _, err := p.expect(tokLParen, "'('"); err != nil {
			return nil, err
		}
		body, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		return term.NewLoop(op, body), nil
	}

	// Otherwise name is a lifeline: either a!m / a?m, or a broadcast
	// a--m->(r1,r2,...).
	lifeline := p.sig.InternLifeline(name)
	if err := p.advance(); err != nil {
		return nil, err
	}

	switch p.tok.kind {
	case tokBang, tokQuestion:
		emission := p.tok.kind == tokBang
		if err := p.advance(); err != nil {
			return nil, err
		}
		msgTok, err := p.expect(tokIdent, "a message name")
		if err != nil {
			return nil, err
		}
		message := p.sig.InternMessage(msgTok.text)
		kind := term.Reception
		if emission {
			kind = term.Emission
		}
		return term.NewAction(term.Action{Kind: kind, Lifeline: lifeline, Message: message}), nil

	case tokDashDash:
		if err := p.advance(); err != nil {
			return nil, err
		}
		msgTok, err := p.expect(tokIdent, "a message name")
		if err != nil {
			return nil, err
		}
		message := p.sig.InternMessage(msgTok.text)
		if _, err := p.expect(tokArrow, "'->'"); err != nil {
			return nil, err
		}
		if _, err := p.expect(tokLParen, "'('"); err != nil {
			return nil, err
		}
		var receivers []signature.ID
		if p.tok.kind != tokRParen {
			for {
				rTok, err := p.expect(tokIdent, "a receiver lifeline")
				if err != nil {
					return nil, err
				}
				receivers = append(receivers, p.sig.InternLifeline(rTok.text))
				if p.tok.kind != tokComma {
					break
				}
				if err := p.advance(); err != nil {
					return nil, err
				}
			}
		}
		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		return term.NewBroadcast(lifeline, message, receivers), nil

	default:
		return nil, fmt.Errorf("fixture: expected '!', '?' or '--' after lifeline %q, got %q", name, p.tok.text)
	}
}
