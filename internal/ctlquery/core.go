package ctlquery

// coreSource is the teacher's own ctl_*/check_ctl predicate library
// (pkg/prolog/engine.go's loadCore), trimmed to the Kripke-structure
// half of it: reachability/temporal operators over state/2,
// transition/3, initial/1, accepting/1, prop/2 facts. The CSP process-
// algebra half (proc/prefix/choice/parallel/stop/skip) is dropped —
// HIBOU's own internal/term interaction terms already supersede it,
// and SPEC_FULL.md §1 only asks for the CTL oracle, not a second
// process calculus living alongside the real one.
const coreSource = `
% EX(Phi) - exists next state satisfying Phi
ctl_ex(State, Phi) :-
    transition(State, _, Next),
    ctl_sat(Next, Phi).

% AX(Phi) - all next states satisfy Phi
ctl_ax(State, Phi) :-
    findall(Next, transition(State, _, Next), Nexts),
    Nexts \= [],
    forall(member(N, Nexts), ctl_sat(N, Phi)).

% EF(Phi) - exists path to state satisfying Phi (reachability)
ctl_ef(State, Phi) :-
    ctl_ef(State, Phi, []).

ctl_ef(State, Phi, _Visited) :-
    ctl_sat(State, Phi).
ctl_ef(State, Phi, Visited) :-
    \+ member(State, Visited),
    transition(State, _, Next),
    ctl_ef(Next, Phi, [State|Visited]).

% AF(Phi) - all paths lead to state satisfying Phi
ctl_af(State, Phi) :-
    ctl_af(State, Phi, []).

ctl_af(State, Phi, _Visited) :-
    ctl_sat(State, Phi).
ctl_af(State, Phi, Visited) :-
    \+ member(State, Visited),
    findall(Next, transition(State, _, Next), Nexts),
    Nexts \= [],
    forall(member(N, Nexts), ctl_af(N, Phi, [State|Visited])).

% EG(Phi) - exists infinite path where Phi always holds
ctl_eg(State, Phi) :-
    ctl_eg(State, Phi, []).

ctl_eg(State, Phi, Visited) :-
    ctl_sat(State, Phi),
    (member(State, Visited) -> true ;
     (transition(State, _, Next),
      ctl_eg(Next, Phi, [State|Visited]))).

% AG(Phi) - Phi holds globally on all paths
ctl_ag(State, Phi) :-
    ctl_ag(State, Phi, []).

ctl_ag(State, Phi, Visited) :-
    ctl_sat(State, Phi),
    (member(State, Visited) -> true ;
     (findall(Next, transition(State, _, Next), Nexts),
      forall(member(N, Nexts), ctl_ag(N, Phi, [State|Visited])))).

% E[Phi U Psi] - exists path where Phi until Psi
ctl_eu(State, _Phi, Psi, _Visited) :-
    ctl_sat(State, Psi).
ctl_eu(State, Phi, Psi, Visited) :-
    \+ member(State, Visited),
    ctl_sat(State, Phi),
    transition(State, _, Next),
    ctl_eu(Next, Phi, Psi, [State|Visited]).

% A[Phi U Psi] - all paths: Phi until Psi
ctl_au(State, _Phi, Psi, _Visited) :-
    ctl_sat(State, Psi).
ctl_au(State, Phi, Psi, Visited) :-
    \+ member(State, Visited),
    ctl_sat(State, Phi),
    findall(Next, transition(State, _, Next), Nexts),
    Nexts \= [],
    forall(member(N, Nexts), ctl_au(N, Phi, Psi, [State|Visited])).

% Satisfaction relation. atom(accepting) holds of every state the
% exploration engine marked "terminal-accepting" (spec.md §4.5); any
% other prop name is whatever the caller asserted via prop/2.
ctl_sat(State, atom(P)) :- prop(State, P).
ctl_sat(State, not(Phi)) :- \+ ctl_sat(State, Phi).
ctl_sat(State, and(Phi, Psi)) :- ctl_sat(State, Phi), ctl_sat(State, Psi).
ctl_sat(State, or(Phi, Psi)) :- (ctl_sat(State, Phi) ; ctl_sat(State, Psi)).
ctl_sat(State, ex(Phi)) :- ctl_ex(State, Phi).
ctl_sat(State, ax(Phi)) :- ctl_ax(State, Phi).
ctl_sat(State, ef(Phi)) :- ctl_ef(State, Phi).
ctl_sat(State, af(Phi)) :- ctl_af(State, Phi).
ctl_sat(State, eg(Phi)) :- ctl_eg(State, Phi).
ctl_sat(State, ag(Phi)) :- ctl_ag(State, Phi).
ctl_sat(State, eu(Phi, Psi)) :- ctl_eu(State, Phi, Psi, []).
ctl_sat(State, au(Phi, Psi)) :- ctl_au(State, Phi, Psi, []).

% Check property from the root node the exploration engine started
% from (spec.md §4.5's search node, asserted as initial/1 by LoadGraph).
check_ctl(Phi) :-
    initial(S),
    ctl_sat(S, Phi).

% --- Utility predicates ---
% ichiban/prolog ships no Prolog-level standard library of its own for
% these, so the teacher defines them directly; kept verbatim.
member(X, [X|_]).
member(X, [_|T]) :- member(X, T).

% forall(Cond, Action) - for all solutions of Cond, Action must succeed
forall(Cond, Action) :- \+ (Cond, \+ Action).
`
