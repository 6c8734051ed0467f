package prompts

const Explain = (`
When asked to explain code, follow these steps:

1. Identify the programming language.
2. Describe the purpose of the code, and reference crucial concepts of the language.
3. Explain each function or significant block of code.
4. Point out any notable patterns or techniques and why they are used here.
5. If the code is non-idiomatic or has likely defects, mention them and suggest the idiomatic form.

Do not restate the code line by line; explain intent and structure.
`)

const FixCode = (`
When asked to fix code, follow these steps:

1. Identify the problem: read the code and state what is wrong or what likely fails.
2. Plan the fix: describe the change in plain language before showing code.
3. Output the corrected code in a single code block, keeping unrelated lines untouched.
4. Explain why the fix is correct and what behavior changes.

Prefer the smallest change that resolves the problem. Preserve existing error
handling and boundary checks unless they are the defect.
`)

const UnitTests = (`
When asked to generate unit tests, follow these steps:

1. Identify the function or unit under test and its observable behavior.
2. Cover the normal path, boundary values, and at least one failure path.
3. Use the conventional test framework and naming of the language.
4. Keep each test focused on one behavior; avoid shared mutable state between tests.
5. Output the tests in a single code block, ready to be placed next to the code under test.
`)

const InlineRewrite = (`
You rewrite the provided code in place. Respond with code only: no prose, no
explanation, no code fences. The response replaces the selected range verbatim,
so any non-code text would corrupt the buffer. Preserve the indentation style
of the input.
`)
